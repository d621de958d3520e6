package validators

// Field name constants used to specify which fields should be validated.
// They are passed to Validate to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owner of a request.
	FieldUserID = "user_id"

	// FieldReadingStates targets the list of states in an update request.
	FieldReadingStates = "reading_states"

	// FieldEntitlementID targets the book id a reading state refers to.
	FieldEntitlementID = "entitlement_id"

	// FieldBookmark targets the progress percent and location of a state.
	FieldBookmark = "bookmark"

	// FieldThresholds targets the reading and finished thresholds of user settings.
	FieldThresholds = "thresholds"
)
