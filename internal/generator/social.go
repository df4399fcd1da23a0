package generator

import (
	"math/rand/v2"

	"pulseboard/internal/models"
)

// SocialPosts emits one post per configured platform. Draw order per
// platform: likes, shares, comments, post ID characters. The engagement rate
// is (likes+shares+comments)/10000 expressed as a percentage.
func (g *Generator) SocialPosts(rng *rand.Rand) []models.SocialPost {
	posts := make([]models.SocialPost, 0, len(g.cfg.Platforms))
	for _, platform := range g.cfg.Platforms {
		likes := intBetween(rng, 100, 10_000)
		shares := intBetween(rng, 10, 2_000)
		comments := intBetween(rng, 5, 500)

		posts = append(posts, models.SocialPost{
			Platform:       platform,
			Likes:          likes,
			Shares:         shares,
			Comments:       comments,
			EngagementRate: round2(float64(likes+shares+comments) / 10_000 * 100),
			PostID:         randomID(rng, "POST", postIDChars, 6),
		})
	}
	return posts
}
