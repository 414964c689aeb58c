package config

// Injection is the parsed result of one config file for one environment: the
// extra program arguments and process properties to apply before control is
// handed to the delegate entry point.
type Injection struct {
	// Args preserves file order, duplicates included.
	Args []string

	// Properties keeps the last value written for each key.
	Properties map[string]string
}

// MergeArgs prepends the injected arguments to the original process
// arguments. The originals keep their relative order and always come last,
// so a delegate that scans back-to-front sees its own arguments first.
func (inj *Injection) MergeArgs(original []string) []string {
	merged := make([]string, 0, len(inj.Args)+len(original))
	merged = append(merged, inj.Args...)
	merged = append(merged, original...)
	return merged
}
