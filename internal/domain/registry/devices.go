package registry

import "strings"

var DefaultDeviceTypes = []string{"GPS Tracker X1", "Sensor de Temperatura", "Cámara de cabina"}

// DeviceTypes is a grow-only list of selectable device labels.
type DeviceTypes struct {
	labels []string
}

func NewDeviceTypes(seed ...string) *DeviceTypes {
	d := &DeviceTypes{}
	for _, s := range seed {
		d.Add(s)
	}
	return d
}

// Add appends the trimmed label unless it is empty or already present.
// Matching is exact and case-sensitive.
func (d *DeviceTypes) Add(label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" || d.Contains(label) {
		return "", false
	}
	d.labels = append(d.labels, label)
	return label, true
}

func (d *DeviceTypes) Contains(label string) bool {
	for _, l := range d.labels {
		if l == label {
			return true
		}
	}
	return false
}

func (d *DeviceTypes) List() []string {
	return append([]string(nil), d.labels...)
}
