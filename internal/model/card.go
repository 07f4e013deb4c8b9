package model

// CardKind distinguishes playable cards.
type CardKind string

const (
	CardCreature CardKind = "creature"
	CardTool     CardKind = "tool"
	CardSpell    CardKind = "spell"
)

// ItemCategory is the tool/spell category; it also picks the caster stat
// that scales a spell.
type ItemCategory string

const (
	CategoryEnergy   ItemCategory = "energy"
	CategoryStrength ItemCategory = "strength"
	CategoryMagic    ItemCategory = "magic"
	CategoryStamina  ItemCategory = "stamina"
	CategorySpeed    ItemCategory = "speed"
)

// ItemCategories lists categories in canonical order.
var ItemCategories = []ItemCategory{CategoryEnergy, CategoryStrength, CategoryMagic, CategoryStamina, CategorySpeed}

// Valid reports whether c is a known category.
func (c ItemCategory) Valid() bool {
	for _, v := range ItemCategories {
		if v == c {
			return true
		}
	}
	return false
}

// BaseStat returns the creature attribute matching the category.
func (c ItemCategory) BaseStat() BaseStat {
	return BaseStat(c)
}

// EffectTag is the effect family a tool or spell produces.
type EffectTag string

const (
	TagSurge  EffectTag = "Surge"
	TagShield EffectTag = "Shield"
	TagEcho   EffectTag = "Echo"
	TagDrain  EffectTag = "Drain"
	TagCharge EffectTag = "Charge"
)

// EffectTags lists tags in canonical order.
var EffectTags = []EffectTag{TagSurge, TagShield, TagEcho, TagDrain, TagCharge}

// Valid reports whether t is a known tag.
func (t EffectTag) Valid() bool {
	for _, v := range EffectTags {
		if v == t {
			return true
		}
	}
	return false
}

// Item is a tool or spell definition.
type Item struct {
	Name     string
	Category ItemCategory
	Tag      EffectTag
}

// Valid reports whether the definition carries both required fields.
func (i Item) Valid() bool {
	return i.Category.Valid() && i.Tag.Valid()
}

// Card — карта в руке или колоде.
type Card struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Kind     CardKind     `yaml:"kind"`
	Cost     int          `yaml:"cost"`
	Category ItemCategory `yaml:"category"`
	Tag      EffectTag    `yaml:"tag"`
	Species  string       `yaml:"species"`
}

// Item returns the tool/spell definition carried by the card.
func (c Card) Item() Item {
	return Item{Name: c.Name, Category: c.Category, Tag: c.Tag}
}
