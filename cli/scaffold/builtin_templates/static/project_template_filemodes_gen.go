package static

// This file is generated! DO NOT EDIT

var ProjectFileModes = map[string]int{
	".gitignore":                   420, /* 0644 */
	"LICENSE":                      420, /* 0644 */
	"README.md.vl.template":        420, /* 0644 */
	"add-vbox-guest-additions.bat": 420, /* 0644 */
	"add-vbox-guest-additions.sh":  493, /* 0755 */
	"start-vms.bat.vl.template":    420, /* 0644 */
	"start-vms.sh.vl.template":     493, /* 0755 */
	"stop-vms.bat.vl.template":     420, /* 0644 */
	"stop-vms.sh.vl.template":      493, /* 0755 */
}
