package platform

import "regexp"

// Rule matches URLs belonging to a known platform. Rules are data: extending
// the supported set means appending a rule, not changing control flow.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// DefaultRules is the ordered set of known platform patterns. The first
// matching rule wins.
var DefaultRules = []Rule{
	{Name: "YouTube", Pattern: regexp.MustCompile(`(?i)(www\.)?(youtube\.com|youtu\.be)/`)},
	{Name: "Vimeo", Pattern: regexp.MustCompile(`(?i)(www\.)?vimeo\.com/`)},
	{Name: "Twitter", Pattern: regexp.MustCompile(`(?i)(www\.)?(twitter\.com|x\.com)/`)},
	{Name: "Instagram", Pattern: regexp.MustCompile(`(?i)(www\.)?instagram\.com/`)},
	{Name: "TikTok", Pattern: regexp.MustCompile(`(?i)(www\.)?tiktok\.com/`)},
	{Name: "Facebook", Pattern: regexp.MustCompile(`(?i)(www\.)?(facebook\.com|fb\.watch)/`)},
	{Name: "Dailymotion", Pattern: regexp.MustCompile(`(?i)(www\.)?dailymotion\.com/`)},
	{Name: "Twitch", Pattern: regexp.MustCompile(`(?i)(www\.)?twitch\.tv/`)},
}

// Classify tests raw against the default rule set and returns the name of the
// first matching platform. The result is advisory: an unmatched URL is still
// processed by the service.
func Classify(raw string) (string, bool) {
	return ClassifyWith(DefaultRules, raw)
}

// ClassifyWith tests raw against the given ordered rules.
func ClassifyWith(rules []Rule, raw string) (string, bool) {
	for _, rule := range rules {
		if rule.Pattern.MatchString(raw) {
			return rule.Name, true
		}
	}
	return "", false
}
