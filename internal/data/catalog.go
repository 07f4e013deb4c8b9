package data

import (
	_ "embed"
	"fmt"
	"log/slog"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/Antigono00/pvp21/internal/model"
)

//go:embed catalog.yaml
var catalogYAML []byte

// SpeciesTemplate is the static definition creatures are minted from.
type SpeciesTemplate struct {
	Name    string          `yaml:"name"`
	Element model.Element   `yaml:"element"`
	Rarity  model.Rarity    `yaml:"rarity"`
	Base    model.BaseStats `yaml:"base"`
}

// Catalog is the parsed species and card pool.
type Catalog struct {
	Species []SpeciesTemplate `yaml:"species"`
	Cards   []model.Card      `yaml:"cards"`
}

// SpeciesTable — глобальный registry видов существ: map[name]*SpeciesTemplate.
var SpeciesTable map[string]*SpeciesTemplate

// CardPool — все карты каталога в порядке объявления.
var CardPool []model.Card

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	names := make(map[string]struct{}, len(c.Species))
	for _, s := range c.Species {
		if s.Name == "" {
			return nil, fmt.Errorf("catalog: species entry missing name")
		}
		if !s.Rarity.Valid() {
			return nil, fmt.Errorf("catalog: species %q has unknown rarity %q", s.Name, s.Rarity)
		}
		if _, dup := names[s.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate species %q", s.Name)
		}
		names[s.Name] = struct{}{}
	}

	ids := make(map[string]struct{}, len(c.Cards))
	for _, card := range c.Cards {
		if _, dup := ids[card.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %q", card.ID)
		}
		ids[card.ID] = struct{}{}

		switch card.Kind {
		case model.CardCreature:
			if _, ok := names[card.Species]; !ok {
				return nil, fmt.Errorf("catalog: card %q references unknown species %q", card.ID, card.Species)
			}
		case model.CardTool, model.CardSpell:
			if !card.Item().Valid() {
				return nil, fmt.Errorf("catalog: card %q has invalid category/tag %q/%q", card.ID, card.Category, card.Tag)
			}
		default:
			return nil, fmt.Errorf("catalog: card %q has unknown kind %q", card.ID, card.Kind)
		}
	}

	return &c, nil
}

// LoadCatalog builds SpeciesTable and CardPool from the embedded catalog.
func LoadCatalog() error {
	c, err := ParseCatalog(catalogYAML)
	if err != nil {
		return err
	}

	SpeciesTable = make(map[string]*SpeciesTemplate, len(c.Species))
	for i := range c.Species {
		SpeciesTable[c.Species[i].Name] = &c.Species[i]
	}
	CardPool = c.Cards

	slog.Info("loaded creature catalog", "species", len(SpeciesTable), "cards", len(CardPool))
	return nil
}

// GetSpecies returns the template for name, or nil if unknown.
func GetSpecies(name string) *SpeciesTemplate {
	if SpeciesTable == nil {
		return nil
	}
	return SpeciesTable[name]
}

// SpeciesNames returns all species names sorted alphabetically.
func SpeciesNames() []string {
	out := make([]string, 0, len(SpeciesTable))
	for name := range SpeciesTable {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CardsOfKind returns the catalog cards of the given kind.
func CardsOfKind(kind model.CardKind) []model.Card {
	var out []model.Card
	for _, c := range CardPool {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// NewCreature mints a creature of the given species. Battle stats are left
// empty: the caller runs the recalculation pipeline to derive them.
func NewCreature(species, id string, form, combination int) (*model.Creature, error) {
	tmpl := GetSpecies(species)
	if tmpl == nil {
		return nil, fmt.Errorf("unknown species %q: %w", species, model.ErrInvalidInput)
	}
	base := tmpl.Base
	base.Specialties = append([]model.BaseStat(nil), tmpl.Base.Specialties...)
	return &model.Creature{
		ID:               id,
		Species:          tmpl.Name,
		Element:          tmpl.Element,
		Rarity:           tmpl.Rarity,
		FormLevel:        form,
		CombinationLevel: combination,
		Base:             base,
	}, nil
}

// GetCard returns the catalog card with the given ID.
func GetCard(id string) (model.Card, bool) {
	for _, c := range CardPool {
		if c.ID == id {
			return c, true
		}
	}
	return model.Card{}, false
}
