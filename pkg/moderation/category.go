package moderation

// Category is one of the fixed moderation classes a piece of content can be
// flagged under. The set is closed; adding a class means adding a constant
// here and rules in the catalog.
type Category string

const (
	CategorySpam                  Category = "spam"
	CategoryHateSpeech            Category = "hate_speech"
	CategoryHarassment            Category = "harassment"
	CategoryViolence              Category = "violence"
	CategoryAdultContent          Category = "adult_content"
	CategoryMisinformation        Category = "misinformation"
	CategoryCopyrightViolation    Category = "copyright_violation"
	CategoryPhishing              Category = "phishing"
	CategoryMalware               Category = "malware"
	CategoryInappropriateLanguage Category = "inappropriate_language"
	CategoryPersonalInformation   Category = "personal_information"
)

// categoryOrder is the fixed catalog iteration order. It determines the order
// of FlagResult.Reasons, so it must not be reordered.
var categoryOrder = []Category{
	CategorySpam,
	CategoryHateSpeech,
	CategoryHarassment,
	CategoryViolence,
	CategoryAdultContent,
	CategoryMisinformation,
	CategoryCopyrightViolation,
	CategoryPhishing,
	CategoryMalware,
	CategoryInappropriateLanguage,
	CategoryPersonalInformation,
}

// Categories returns all moderation categories in catalog iteration order.
// The returned slice is a copy and may be modified by the caller.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ValidCategory reports whether c is a known moderation category.
func ValidCategory(c Category) bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}
