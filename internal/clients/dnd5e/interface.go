package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

// Client looks up reference data for spells the character knows
type Client interface {
	GetSpell(name string) (*SpellInfo, error)
}

// SpellInfo is the reference entry for a spell
type SpellInfo struct {
	Key           string
	Name          string
	Level         int
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Concentration bool
	Ritual        bool
	DamageType    string
	Classes       []string
}
