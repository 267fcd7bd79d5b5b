package dnd5e

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	apiEntities "github.com/fadedpez/dnd5e-api/entities"

	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

type client struct {
	client dnd5e.Interface
}

// Config configures the reference client. API replaces the upstream client when set.
type Config struct {
	HttpClient *http.Client
	API        dnd5e.Interface
}

// New creates a reference client backed by the public D&D 5e API
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, apperr.InvalidArgument("cfg cannot be nil")
	}

	if cfg.API != nil {
		return &client{client: cfg.API}, nil
	}

	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	dndClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client: httpClient,
	})
	if err != nil {
		return nil, apperr.Wrap(err, "failed to create dnd5e client")
	}

	return &client{
		client: dndClient,
	}, nil
}

// GetSpell retrieves a spell by display name or API key
func (c *client) GetSpell(name string) (*SpellInfo, error) {
	key := SpellKey(name)
	if key == "" {
		return nil, apperr.InvalidArgument("spell name is required")
	}

	apiSpell, err := c.client.GetSpell(key)
	if err != nil {
		return nil, apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to get spell").
			WithMeta("spell", key)
	}
	if apiSpell == nil {
		return nil, apperr.NotFoundf("spell %q not found", name).
			WithMeta("spell", key)
	}

	return convertSpell(apiSpell), nil
}

var nonKeyChars = regexp.MustCompile(`[^a-z0-9]+`)

// SpellKey turns "Hunter's Mark" into the API index "hunters-mark"
func SpellKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "'", "")
	key = strings.ReplaceAll(key, "’", "")
	key = nonKeyChars.ReplaceAllString(key, "-")
	return strings.Trim(key, "-")
}

func convertSpell(apiSpell *apiEntities.Spell) *SpellInfo {
	spell := &SpellInfo{
		Key:           apiSpell.Key,
		Name:          apiSpell.Name,
		Level:         apiSpell.SpellLevel,
		CastingTime:   apiSpell.CastingTime,
		Range:         apiSpell.Range,
		Duration:      apiSpell.Duration,
		Concentration: apiSpell.Concentration,
		Ritual:        apiSpell.Ritual,
		Classes:       extractClassNames(apiSpell.SpellClasses),
	}

	if apiSpell.SpellSchool != nil {
		spell.School = apiSpell.SpellSchool.Name
	}

	if apiSpell.SpellDamage != nil && apiSpell.SpellDamage.SpellDamageType != nil {
		spell.DamageType = apiSpell.SpellDamage.SpellDamageType.Name
	}

	return spell
}

func extractClassNames(refs []*apiEntities.ReferenceItem) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		names = append(names, ref.Name)
	}
	return names
}
