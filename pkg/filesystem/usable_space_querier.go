package filesystem

// UsableSpaceQuerier is an interface for obtaining the amount of space
// that is available to the current process on the file system
// containing a given path.
//
// Implementations are expected to return live values. The amount of
// usable space may change at any point in time, as the file system may
// be shared with processes that have nothing to do with this one.
type UsableSpaceQuerier interface {
	GetUsableSpace(path string) (int64, error)
}
