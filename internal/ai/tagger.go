package ai

import "strings"

// tagGroup maps one descriptive tag to the keywords that trigger it. Groups
// are independent; a campaign can collect several tags.
type tagGroup struct {
	tag      string
	keywords []string
}

var tagGroups = []tagGroup{
	{tag: "Win-back", keywords: []string{"win-back", "miss you", "come back"}},
	{tag: "High Value", keywords: []string{"high value", "vip", "premium"}},
	{tag: "Product Launch", keywords: []string{"new", "launch", "introducing"}},
	{tag: "Re-engagement", keywords: []string{"inactive", "re-engagement"}},
	{tag: "Appreciation", keywords: []string{"appreciation", "thank"}},
}

// GenerateCampaignTags assigns descriptive tags to a campaign based on its
// name and message text. Returns ["General"] when no keyword group matches.
func GenerateCampaignTags(name, message string) []string {
	text := strings.ToLower(name + " " + message)

	var tags []string
	for _, g := range tagGroups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				tags = append(tags, g.tag)
				break
			}
		}
	}

	if len(tags) == 0 {
		return []string{"General"}
	}
	return tags
}
