package compositor

import "waylink/pkg/wire"

func init() {
	register("wl_data_device_manager", 0, handleDataDeviceManagerGetDataDevice)
	register("wl_data_device_manager", 1, handleDataDeviceManagerCreateDataSource)
}

// handleDataDeviceManagerGetDataDevice implements
// wl_data_device_manager.get_data_device (op 0). Object creation only;
// actual clipboard content transfer is out of scope.
func handleDataDeviceManagerGetDataDevice(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	id, err := r.Uint()
	if err != nil {
		return nil
	}
	// seat id argument follows but is not needed beyond registration.
	c.Objects.Insert(id, "wl_data_device", 3)
	return nil
}

// handleDataDeviceManagerCreateDataSource implements
// wl_data_device_manager.create_data_source (op 1).
func handleDataDeviceManagerCreateDataSource(c *Connection, objectID uint32, payload []byte) [][]byte {
	r := wire.NewReader(payload)
	id, err := r.Uint()
	if err != nil {
		return nil
	}
	c.Objects.Insert(id, "wl_data_source", 3)
	return nil
}
