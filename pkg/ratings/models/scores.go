package models

// Score category keys, in output order.
const (
	CategoryConsolidated = "consolidated"
	CategorySMI          = "smi"
	CategorySocial       = "social"
	CategoryVK           = "vk"
	CategoryTelegram     = "tg"
	CategoryMax          = "ok"
	CategoryRutube       = "rt"
	CategorySite         = "site"
	CategoryAgenda       = "agenda"
)

// Categories lists every score key in the order it is serialized.
var Categories = []string{
	CategoryConsolidated,
	CategorySMI,
	CategorySocial,
	CategoryVK,
	CategoryTelegram,
	CategoryMax,
	CategoryRutube,
	CategorySite,
	CategoryAgenda,
}

// ScoreSet holds the nine scores of an institution for one month.
// A nil field is an absent value and serializes as null.
type ScoreSet struct {
	Consolidated *float64 `json:"consolidated"`
	SMI          *float64 `json:"smi"`
	Social       *float64 `json:"social"`
	VK           *float64 `json:"vk"`
	Telegram     *float64 `json:"tg"`
	Max          *float64 `json:"ok"`
	Rutube       *float64 `json:"rt"`
	Site         *float64 `json:"site"`
	Agenda       *float64 `json:"agenda"`
}

// Get returns the score stored under a category key.
// The second result is false when the key is unknown.
func (s ScoreSet) Get(category string) (*float64, bool) {
	switch category {
	case CategoryConsolidated:
		return s.Consolidated, true
	case CategorySMI:
		return s.SMI, true
	case CategorySocial:
		return s.Social, true
	case CategoryVK:
		return s.VK, true
	case CategoryTelegram:
		return s.Telegram, true
	case CategoryMax:
		return s.Max, true
	case CategoryRutube:
		return s.Rutube, true
	case CategorySite:
		return s.Site, true
	case CategoryAgenda:
		return s.Agenda, true
	}
	return nil, false
}

// SocialParts returns the four platform scores summed into the social aggregate.
func (s ScoreSet) SocialParts() []*float64 {
	return []*float64{s.VK, s.Telegram, s.Max, s.Rutube}
}
