package encode

type EncodeOption func(*EncState)

// EncodePretty writes one entry per line, indented by depth.
func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
