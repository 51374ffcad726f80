package domain

// ContainerStatus is a point-in-time description of a container, looked up
// fresh for every accepted event.
type ContainerStatus struct {
	Image    string
	Status   string
	Health   string
	Created  string
	Platform string
}

// Sentinel values for failed lookups. The two failure modes stay
// distinguishable in notifications: "unknown" means the container no longer
// exists, "error" means the lookup itself failed.
const (
	StatusUnknown = "unknown"
	StatusError   = "error"
)

// UnknownStatus is the status reported when the container cannot be found.
func UnknownStatus() ContainerStatus {
	return uniformStatus(StatusUnknown)
}

// ErrorStatus is the status reported when the lookup fails for any reason
// other than the container not existing.
func ErrorStatus() ContainerStatus {
	return uniformStatus(StatusError)
}

func uniformStatus(v string) ContainerStatus {
	return ContainerStatus{
		Image:    v,
		Status:   v,
		Health:   v,
		Created:  v,
		Platform: v,
	}
}
