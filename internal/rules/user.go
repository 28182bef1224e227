package rules

// Field names and messages used by ValidateUserInput.
const (
	FieldUsername = "username"
	FieldAge      = "age"

	MsgInvalidUsername = "Invalid username"
	MsgInvalidAge      = "Invalid age"

	MinUsernameLength = 3
	MaxUsernameLength = 255
	MinAge            = 18
)

// UserRules are the rules applied to a sign-up record.
var UserRules = []Rule{
	IsString(FieldUsername, MsgInvalidUsername),
	LengthBetween(FieldUsername, MsgInvalidUsername, MinUsernameLength, MaxUsernameLength),
	IsNumber(FieldAge, MsgInvalidAge),
	AtLeast(FieldAge, MsgInvalidAge, MinAge),
}

// ValidateUserInput checks a username and age supplied by the caller.
// Both fields are always checked, so one failure can report both problems.
func ValidateUserInput(username, age any) Result {
	return Validate(Record{
		FieldUsername: username,
		FieldAge:      age,
	}, UserRules)
}
