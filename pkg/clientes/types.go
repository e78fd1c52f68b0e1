package clientes

// Record is an opaque customer as the server sends it. This package never
// inspects its fields.
type Record map[string]interface{}

// DefaultResource is the collection path the service addresses.
const DefaultResource = "clientes"
