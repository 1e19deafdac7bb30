package config

var Presets = map[string]*Config{
	"nacl-dissolved": {
		Substance: "NaCl", Temperature: 25, Water: 100, Solute: 30,
	},
	"nacl-saturated": {
		Substance: "NaCl", Temperature: 20, Water: 100, Solute: 36.4,
	},
	"kno3-cooled": {
		Substance: "KNO3", Temperature: 20, Water: 100, Solute: 40,
	},
	"kno3-hot": {
		Substance: "KNO3", Temperature: 80, Water: 100, Solute: 150,
	},
	"cuso4-crystals": {
		Substance: "CuSO4", Temperature: 10, Water: 50, Solute: 30,
	},
	"nano3-evaporated": {
		Substance: "NaNO3", Temperature: 40, Water: 20, Solute: 60,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
