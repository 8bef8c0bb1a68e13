package domain

type MemberId = string

type Member struct {
	Id       MemberId
	PassHash string
	Nickname string
}

type Credentials struct {
	Id       MemberId
	Password string
}

type Registration struct {
	Credentials
	Nickname string
}

// Subject is the identity a verified token asserts.
type Subject struct {
	Id       MemberId
	Nickname string
}
