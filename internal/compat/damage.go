// Package compat exposes battle results in the flat shape older clients read,
// where the same damage number appears under several names.
package compat

import (
	"github.com/Antigono00/pvp21/internal/game/combat"
	"github.com/Antigono00/pvp21/internal/model"
)

// AttackView is an attack result with every damage alias filled in.
// All five damage fields always hold the same value.
type AttackView struct {
	Damage       int `json:"damage" yaml:"damage"`
	FinalDamage  int `json:"finalDamage" yaml:"finalDamage"`
	TotalDamage  int `json:"totalDamage" yaml:"totalDamage"`
	DamageDealt  int `json:"damageDealt" yaml:"damageDealt"`
	ActualDamage int `json:"actualDamage" yaml:"actualDamage"`

	IsDodged      bool   `json:"isDodged" yaml:"isDodged"`
	IsCritical    bool   `json:"isCritical" yaml:"isCritical"`
	Effectiveness string `json:"effectiveness" yaml:"effectiveness"`
	DamageType    string `json:"damageType" yaml:"damageType"`
	BattleLog     string `json:"battleLog" yaml:"battleLog"`

	UpdatedAttacker *model.Creature `json:"updatedAttacker" yaml:"-"`
	UpdatedDefender *model.Creature `json:"updatedDefender" yaml:"-"`
}

// FromAttack builds the alias view of r.
func FromAttack(r combat.AttackResult) AttackView {
	return AttackView{
		Damage:          r.Damage,
		FinalDamage:     r.Damage,
		TotalDamage:     r.Damage,
		DamageDealt:     r.Damage,
		ActualDamage:    r.Damage,
		IsDodged:        r.IsDodged,
		IsCritical:      r.IsCritical,
		Effectiveness:   string(r.Effectiveness),
		DamageType:      string(r.DamageType),
		BattleLog:       r.Log,
		UpdatedAttacker: r.Attacker,
		UpdatedDefender: r.Defender,
	}
}
