package static

// This file is generated! DO NOT EDIT

var CommonFileModes = map[string]int{
	"provision/provision-common.sh.vl.template": 493, /* 0755 */
}
