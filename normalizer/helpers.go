package normalizer

// stringOr dereferences p, falling back to def when upstream left it out.
func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// presentOrNil drops empty strings so they encode as null.
func presentOrNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func strPtr(s string) *string {
	return &s
}
