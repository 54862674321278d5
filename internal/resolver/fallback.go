package resolver

import (
	"os"
	"path/filepath"
)

// fallbackCandidates maps command names to Windows install locations probed
// when the PATH lookup misses. Vendor default directories come first, the
// bundled toolkit copy last, so a system-wide install is preferred. Order
// within each list is significant.
func fallbackCandidates() map[string][]string {
	profile := os.Getenv("USERPROFILE")
	if profile == "" {
		profile = os.Getenv("HOME")
	}
	toolkit := filepath.Join(profile, "Desktop", "CTF-Toolkit", "Tools-Binaries")
	username := os.Getenv("USERNAME")

	return map[string][]string{
		"exiftool": {
			`C:\Program Files\Exiftool\exiftool.exe`,
			filepath.Join(toolkit, "exiftool", "exiftool.exe"),
		},
		"binwalk": {
			`C:\ProgramData\chocolatey\bin\binwalk.exe`,
			filepath.Join(toolkit, "binwalk", "binwalk.exe"),
		},
		"zsteg": {
			`C:\tools\ruby*\bin\zsteg.bat`,
			filepath.Join(toolkit, "zsteg", "zsteg.bat"),
		},
		"hashcat": {
			`C:\Program Files\hashcat\hashcat.exe`,
			filepath.Join(toolkit, "hashcat", "hashcat.exe"),
		},
		"john": {
			`C:\Program Files\John\run\john.exe`,
			filepath.Join(toolkit, "john", "john.exe"),
		},
		"strings": {
			`C:\Program Files\GnuWin32\bin\strings.exe`,
			filepath.Join(toolkit, "utilities", "strings.exe"),
		},
		"xxd": {
			`C:\Program Files\GnuWin32\bin\xxd.exe`,
			filepath.Join(toolkit, "utilities", "xxd.exe"),
		},
		"ncat": {
			`C:\Program Files (x86)\Nmap\ncat.exe`,
			`C:\Program Files\Nmap\ncat.exe`,
			filepath.Join(toolkit, "utilities", "ncat.exe"),
		},
		"curl": {
			`C:\Windows\System32\curl.exe`,
			filepath.Join(toolkit, "utilities", "curl.exe"),
		},
		"ghidraRun": {
			`C:\Program Files\ghidra\ghidraRun.bat`,
			filepath.Join(toolkit, "ghidra", "ghidraRun.bat"),
		},
		"radare2": {
			`C:\ProgramData\chocolatey\bin\radare2.exe`,
			filepath.Join(toolkit, "radare2", "radare2.exe"),
		},
		"wireshark": {
			`C:\Program Files\Wireshark\Wireshark.exe`,
			filepath.Join(toolkit, "wireshark", "Wireshark.exe"),
		},
		"burpsuite": {
			`C:\Program Files\BurpSuiteCommunity\burpsuite_community.exe`,
			`C:\Program Files\Burp Suite Community Edition\burpsuite_community.exe`,
		},
		"burpsuitecommunity": {
			`C:\Program Files\BurpSuiteCommunity\burpsuite_community.exe`,
			`C:\Program Files\Burp Suite Community Edition\burpsuite_community.exe`,
		},
		"cyberchef": {
			`C:\Program Files\CyberChef\CyberChef.exe`,
			filepath.Join(`C:\Users`, username, `AppData\Local\Programs\CyberChef\CyberChef.exe`),
		},
	}
}
