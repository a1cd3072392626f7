package constants

type UserLevel string

const (
	LevelAdmin UserLevel = "admin"
	LevelUser  UserLevel = "user"
)

func (l UserLevel) Valid() bool {
	return l == LevelAdmin || l == LevelUser
}
