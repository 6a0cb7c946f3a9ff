package compositor

func init() {
	register("wl_region", 0, handleRegionDestroy)
}

func handleRegionDestroy(c *Connection, objectID uint32, payload []byte) [][]byte {
	c.Objects.Remove(objectID)
	return nil
}
