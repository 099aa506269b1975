package payload

// ProfileRequest carries any subset of the profile fields. Nil means the
// field was not sent and its stored value is kept. There is deliberately no
// owner field: the profile is always attributed to the authenticated caller.
type ProfileRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	Age       *int    `json:"age"       validate:"omitempty,gte=18,lte=120"`
	Gender    *string `json:"gender"    validate:"omitempty,max=50"`
	Languages *string `json:"languages" validate:"omitempty,max=500"`
	Culture   *string `json:"culture"   validate:"omitempty,max=500"`
	Interests *string `json:"interests" validate:"omitempty,max=500"`
}
