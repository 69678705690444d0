package config

// LanguageInfo names a response language the settings view offers. The ID
// is what gets stored in config and passed to the prompt assembler.
type LanguageInfo struct {
	ID   string
	Name string
}

// Languages the settings view cycles through. The empty ID means "model
// default": no directive is injected at all.
var Languages = []LanguageInfo{
	{ID: "", Name: "Model default"},
	{ID: "English", Name: "English"},
	{ID: "German", Name: "German"},
	{ID: "French", Name: "French"},
	{ID: "Spanish", Name: "Spanish"},
	{ID: "Italian", Name: "Italian"},
	{ID: "Portuguese", Name: "Portuguese"},
	{ID: "Dutch", Name: "Dutch"},
	{ID: "Polish", Name: "Polish"},
	{ID: "Japanese", Name: "Japanese"},
	{ID: "Korean", Name: "Korean"},
	{ID: "Chinese", Name: "Chinese"},
}

func GetLanguage(id string) *LanguageInfo {
	for _, l := range Languages {
		if l.ID == id {
			return &l
		}
	}
	return nil
}
