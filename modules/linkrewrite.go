package modules

import "regexp"

// Rewrites social links to mirrors that embed properly in chat clients.
var linkRewrites = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`https?://(?:www\.)?(?:twitter|x)\.com/`), "https://fxtwitter.com/"},
	{regexp.MustCompile(`https?://(?:www\.)?instagram\.com/`), "https://ddinstagram.com/"},
}

// RewriteLinks replaces known social links in text with embed-friendly
// mirrors. The second return is false when nothing matched.
func RewriteLinks(text string) (string, bool) {
	rewritten := text
	changed := false
	for _, r := range linkRewrites {
		if r.pattern.MatchString(rewritten) {
			rewritten = r.pattern.ReplaceAllString(rewritten, r.replacement)
			changed = true
		}
	}
	return rewritten, changed
}
