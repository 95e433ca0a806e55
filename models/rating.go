package models

// Rating classifies post maturity. Stored as its short form ("u", "s",
// "q", "e") so it matches what the search syntax accepts after "rating:".
type Rating string

const (
	RatingUnrated      Rating = "u"
	RatingSafe         Rating = "s"
	RatingQuestionable Rating = "q"
	RatingExplicit     Rating = "e"
)

// AllRatings is ordered from least to most mature.
var AllRatings = []Rating{RatingUnrated, RatingSafe, RatingQuestionable, RatingExplicit}

func (r Rating) Valid() bool {
	switch r {
	case RatingUnrated, RatingSafe, RatingQuestionable, RatingExplicit:
		return true
	}
	return false
}

func (r Rating) Label() string {
	switch r {
	case RatingSafe:
		return "Safe"
	case RatingQuestionable:
		return "Questionable"
	case RatingExplicit:
		return "Explicit"
	default:
		return "Unrated"
	}
}
