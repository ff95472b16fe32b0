package dto

type HookResult struct {
	Name  string
	Error string
}

type DoctorResult struct {
	Name            string
	Kind            string
	BinaryReachable bool
	LifecycleOK     bool
	Error           string
}
