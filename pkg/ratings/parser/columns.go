package parser

// Columns holds the workbook header names read for each field.
type Columns struct {
	Name         string `yaml:"name"`
	Consolidated string `yaml:"consolidated"`
	SMI          string `yaml:"smi"`
	Social       string `yaml:"social"`
	VK           string `yaml:"vk"`
	Telegram     string `yaml:"tg"`
	Max          string `yaml:"ok"`
	Rutube       string `yaml:"rt"`
	Site         string `yaml:"site"`
	Agenda       string `yaml:"agenda"`
}

// DefaultColumns returns the header names used by the ratings workbook.
func DefaultColumns() Columns {
	return Columns{
		Name:         "Вуз",
		Consolidated: "Сводный рейтинг",
		SMI:          "СМИ",
		Social:       "Социальные сети",
		VK:           "ВКонтакте",
		Telegram:     "Telegram",
		Max:          "MAX",
		Rutube:       "Rutube",
		Site:         "Сайт",
		Agenda:       "Федеральная повестка",
	}
}

// Merge returns c with every non-empty field of override applied.
func (c Columns) Merge(override Columns) Columns {
	pick := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	return Columns{
		Name:         pick(c.Name, override.Name),
		Consolidated: pick(c.Consolidated, override.Consolidated),
		SMI:          pick(c.SMI, override.SMI),
		Social:       pick(c.Social, override.Social),
		VK:           pick(c.VK, override.VK),
		Telegram:     pick(c.Telegram, override.Telegram),
		Max:          pick(c.Max, override.Max),
		Rutube:       pick(c.Rutube, override.Rutube),
		Site:         pick(c.Site, override.Site),
		Agenda:       pick(c.Agenda, override.Agenda),
	}
}
