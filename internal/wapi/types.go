package wapi

// Zone is the read-only snapshot of an authoritative zone's lock state as
// returned by the grid. Field values pass through from the WAPI verbatim.
type Zone struct {
	Ref      string `json:"_ref"`
	FQDN     string `json:"fqdn"`
	Locked   bool   `json:"locked"`
	LockedBy string `json:"locked_by,omitempty"`
}

// Operation selects the direction of a lock_unlock_zone call.
type Operation string

const (
	OperationLock   Operation = "LOCK"
	OperationUnlock Operation = "UNLOCK"
)
