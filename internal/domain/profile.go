package domain

type ProfileName string

type Profile struct {
	Name        ProfileName
	Role        string
	Description string
}

// Context is the free text that biases summarization and keys the cache.
func (p Profile) Context() string {
	return p.Description
}
