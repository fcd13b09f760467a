package crawl

// Dedupe returns urls with repeats removed, keeping the first occurrence of
// each distinct URL and preserving the relative order of first occurrences.
func Dedupe(urls []string) []string {
	seen := make(map[string]struct{}, len(urls))
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
