// Package provider downloads a cloud provider's published IP range document.
//
// The document is a JSON object with a top-level "prefixes" array:
//
//	{
//	  "syncToken": "1700000000",
//	  "createDate": "2023-11-14-22-13-20",
//	  "prefixes": [
//	    {"ip_prefix": "3.5.140.0/22", "region": "ap-northeast-2",
//	     "service": "AMAZON", "network_border_group": "ap-northeast-2"}
//	  ]
//	}
//
// HTTPProvider performs one bounded GET and returns every record. There is
// no retry: any failure is returned as a FETCH_ERROR.
package provider
