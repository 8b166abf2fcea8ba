package models

// Record is one entry of a provider's published IP range list.
type Record struct {
	// IPPrefix is the IPv4 prefix in CIDR notation, e.g. "3.5.140.0/22".
	IPPrefix string `json:"ip_prefix"`
	// Service is the provider service identifier, e.g. "S3" or "CLOUDFRONT".
	Service string `json:"service"`
	// Region is the region or partition identifier, e.g. "us-east-1" or "GLOBAL".
	Region string `json:"region"`
	// NetworkBorderGroup is an opaque grouping label. It takes no part in selection.
	NetworkBorderGroup string `json:"network_border_group"`
}

// Document is the top-level shape of a provider range list.
type Document struct {
	SyncToken  string    `json:"syncToken"`
	CreateDate string    `json:"createDate"`
	Prefixes   *[]Record `json:"prefixes"`
}
