package state

// requestTokens tracks the latest request token per resource. Callers hold
// the owning store's lock.
type requestTokens map[string]uint64

func (t requestTokens) issue(resource string) uint64 {
	t[resource]++
	return t[resource]
}

func (t requestTokens) current(resource string, token uint64) bool {
	return token != 0 && t[resource] == token
}
