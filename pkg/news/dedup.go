package news

import (
	"strings"

	"github.com/umputun/newsdigest/pkg/domain"
)

// titleKeyLen is the number of normalized title runes compared for duplicates
const titleKeyLen = 60

// Dedup keeps the first article for every normalized title, preserving order.
// Applied to score-sorted input it keeps the highest scored duplicate.
func Dedup(articles []domain.ScoredArticle) []domain.ScoredArticle {
	seen := make(map[string]struct{}, len(articles))
	res := make([]domain.ScoredArticle, 0, len(articles))
	for _, a := range articles {
		key := TitleKey(a.Title)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, a)
	}
	return res
}

// TitleKey normalizes a title for duplicate detection, keeping only ascii letters and digits
// of the lowercased title. Accented letters are dropped, not folded.
func TitleKey(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		if sb.Len() == titleKeyLen {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
