package query

import "picboard/models"

// TagJoin selects how the tag-name aggregation joins against posts.
type TagJoin int

const (
	// TagJoinLeft keeps untagged posts in the result. Required unless an
	// include-tag filter is present: a zero-tag post cannot match any
	// excluded tag, so exclude-only queries must keep it visible.
	TagJoinLeft TagJoin = iota
	// TagJoinInner is correct only when include-tags apply: matching then
	// needs at least one association anyway.
	TagJoinInner
)

// SearchPlan is the compiled post query: a join mode for the tag-name
// aggregation plus the WHERE tree. Repositories translate it into the
// actual SELECT; ordering is always posts.id descending (newest first) and
// rows are grouped per post.
type SearchPlan struct {
	TagJoin TagJoin
	Where   And
}

// With returns a copy of the plan with extra predicates ANDed in. Used for
// parent/child lookups that reuse the overview shape.
func (p SearchPlan) With(preds ...Predicate) SearchPlan {
	where := make(And, 0, len(p.Where)+len(preds))
	where = append(where, p.Where...)
	for _, pred := range preds {
		if pred != nil {
			where = append(where, pred)
		}
	}
	return SearchPlan{TagJoin: p.TagJoin, Where: where}
}

const (
	includeTagsSubquery = "SELECT tag_posts.post_id FROM tag_posts" +
		" INNER JOIN tags ON tags.id = tag_posts.tag_id" +
		" WHERE tags.normalized_name IN ?" +
		" GROUP BY tag_posts.post_id" +
		" HAVING COUNT(DISTINCT tags.id) = ?"

	excludeTagsSubquery = "SELECT tag_posts.post_id FROM tag_posts" +
		" INNER JOIN tags ON tags.id = tag_posts.tag_id" +
		" WHERE tags.normalized_name IN ?"
)

// CompileSearch builds the plan for one classified query against one
// viewer.
//
// Include-tags become a counting subquery: a post qualifies when the count
// of its distinct matching tags equals the set size. A post cannot match
// more than len(IncludeTags) distinct tags from the set, so equality is
// exact, and COUNT(DISTINCT) keeps a hypothetical duplicated association
// from inflating the count. Exclude-tags are a plain NOT IN: one match
// disqualifies. Rating sets restrict posts.rating directly; unknown rating
// values simply match nothing.
func CompileSearch(tokens TokenSets, viewer *models.Identity) SearchPlan {
	plan := SearchPlan{TagJoin: TagJoinLeft}
	if len(tokens.IncludeTags) > 0 {
		plan.TagJoin = TagJoinInner
	}

	if len(tokens.IncludeTags) > 0 {
		plan.Where = append(plan.Where, InSubquery{
			Column: "posts.id",
			SQL:    includeTagsSubquery,
			Args:   []any{tokens.IncludeTags, len(tokens.IncludeTags)},
		})
	}
	if len(tokens.ExcludeTags) > 0 {
		plan.Where = append(plan.Where, InSubquery{
			Column: "posts.id",
			SQL:    excludeTagsSubquery,
			Args:   []any{tokens.ExcludeTags},
			Negate: true,
		})
	}
	if len(tokens.IncludeRatings) > 0 {
		plan.Where = append(plan.Where, In{Column: "posts.rating", Values: tokens.IncludeRatings})
	}
	if len(tokens.ExcludeRatings) > 0 {
		plan.Where = append(plan.Where, In{Column: "posts.rating", Values: tokens.ExcludeRatings, Negate: true})
	}
	if vis := Visibility(viewer, "posts"); vis != nil {
		plan.Where = append(plan.Where, vis)
	}
	return plan
}
