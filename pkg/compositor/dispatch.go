package compositor

import "waylink/pkg/logger"

// handlerFunc handles one (interface, opcode) request. It receives the
// connection, the acting object's id, and the raw argument payload,
// and returns zero or more fully-encoded outbound messages.
type handlerFunc func(c *Connection, objectID uint32, payload []byte) [][]byte

var dispatchTable = map[string]map[uint16]handlerFunc{}

// register adds a handler for (iface, opcode) to the static dispatch
// table. Called from each interface file's init(), so the table is
// built once at package load and every later Dispatch call is just two
// map lookups — the array-indexed-equivalent the design calls for,
// since objects only ever carry an interface name, not a pre-resolved
// index.
func register(iface string, opcode uint16, fn handlerFunc) {
	m, ok := dispatchTable[iface]
	if !ok {
		m = make(map[uint16]handlerFunc)
		dispatchTable[iface] = m
	}
	m[opcode] = fn
}

// Dispatch routes a decoded message to its handler based on the acting
// object's interface. Unknown object, unknown interface, or unknown
// opcode within a known interface: logged and skipped, never fatal.
func Dispatch(c *Connection, objectID uint32, opcode uint16, payload []byte) [][]byte {
	obj, ok := c.Objects.Lookup(objectID)
	if !ok {
		logger.Warn().Uint32("object", objectID).Msg("message for unknown object")
		return nil
	}

	handlers, ok := dispatchTable[obj.Interface]
	if !ok {
		logger.Warn().Str("interface", obj.Interface).Msg("message for unknown interface")
		return nil
	}

	fn, ok := handlers[opcode]
	if !ok {
		logger.Warn().Str("interface", obj.Interface).Uint16("opcode", opcode).Msg("unknown opcode")
		return nil
	}

	return fn(c, objectID, payload)
}
