package cache

// Separator joins the namespace and the entity identifier in a cache key.
const Separator = ":"

// Key builds the store key for an entity. An empty id addresses the
// namespace's singleton entry (e.g. the notice list). Namespaces must not be
// prefixes of one another or bulk clears will cross over.
func Key(namespace, id string) string {
	if id == "" {
		return namespace
	}
	return namespace + Separator + id
}
