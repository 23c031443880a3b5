package config

// Merge overlays loaded on top of base and returns the result. Nil
// fields in loaded keep the base value; maps are merged key by key with
// loaded winning. A nil loaded returns a copy of base.
func Merge(base, loaded *Config) *Config {
	out := *base
	if loaded == nil {
		return &out
	}

	if loaded.Formula != "" {
		out.Formula = loaded.Formula
	}
	if loaded.Highlight != nil {
		out.Highlight = loaded.Highlight
	}
	if loaded.MinWords != nil {
		out.MinWords = loaded.MinWords
	}
	if loaded.Top != nil {
		out.Top = loaded.Top
	}
	if len(loaded.Ignore) > 0 {
		out.Ignore = loaded.Ignore
	}
	if len(loaded.Files) > 0 {
		out.Files = loaded.Files
	}

	if len(loaded.Thresholds) > 0 {
		merged := make(map[string]float64, len(base.Thresholds)+len(loaded.Thresholds))
		for k, v := range base.Thresholds {
			merged[k] = v
		}
		for k, v := range loaded.Thresholds {
			merged[k] = v
		}
		out.Thresholds = merged
	}

	if len(loaded.Vocabularies) > 0 {
		merged := make(map[string]string, len(base.Vocabularies)+len(loaded.Vocabularies))
		for k, v := range base.Vocabularies {
			merged[k] = v
		}
		for k, v := range loaded.Vocabularies {
			merged[k] = v
		}
		out.Vocabularies = merged
	}

	return &out
}
