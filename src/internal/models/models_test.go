package models

import (
	"reflect"
	"testing"
)

func TestRegionSet(t *testing.T) {
	set := NewRegionSet("us-east-2", "us-east-1", "us-east-1")

	if !set.Has("us-east-1") || !set.Has("us-east-2") {
		t.Error("Expected both regions to be present")
	}
	if set.Has("eu-west-1") {
		t.Error("Expected eu-west-1 to be absent")
	}
	if got := set.Sorted(); !reflect.DeepEqual(got, []string{"us-east-1", "us-east-2"}) {
		t.Errorf("Sorted() = %v", got)
	}
}

func TestSelector(t *testing.T) {
	selector := Selector{
		"S3":         NewRegionSet("us-east-1", "us-east-2"),
		"CLOUDFRONT": NewRegionSet("GLOBAL"),
	}

	if got := selector.Services(); !reflect.DeepEqual(got, []string{"CLOUDFRONT", "S3"}) {
		t.Errorf("Services() = %v", got)
	}

	tests := []struct {
		record   Record
		expected bool
	}{
		{Record{Service: "S3", Region: "us-east-1"}, true},
		{Record{Service: "CLOUDFRONT", Region: "GLOBAL"}, true},
		{Record{Service: "S3", Region: "eu-west-1"}, false},
		{Record{Service: "EC2", Region: "us-east-1"}, false},
		{Record{Service: "s3", Region: "us-east-1"}, false},
	}
	for _, tt := range tests {
		if got := selector.Matches(tt.record); got != tt.expected {
			t.Errorf("Matches(%s/%s) = %v, want %v", tt.record.Service, tt.record.Region, got, tt.expected)
		}
	}
}
