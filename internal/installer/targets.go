package installer

// Install plans per platform. Order matches the catalog; a blank package
// name means the distro has no package and the entry is reported as a
// manual install.

// TargetCount reports how many install steps the platform plan contains,
// used to size the progress display.
func TargetCount(goos string) int {
	switch goos {
	case "windows":
		return len(windowsTargets)
	case "darwin":
		return len(darwinTargets)
	case "linux":
		return len(linuxTargets["apt"])
	default:
		return 0
	}
}

var windowsTargets = []Target{
	{Tool: "ExifTool", Manager: "winget", Package: "PhilHarvey.ExifTool"},
	{Tool: "Binwalk", Manager: "choco", Package: "binwalk"},
	{Tool: "zsteg", Manager: "choco", Package: "zsteg"},
	{Tool: "Hashcat", Manager: "winget", Package: "hashcat"},
	{Tool: "John the Ripper", Manager: "choco", Package: "john"},
	{Tool: "GNU Coreutils", Manager: "winget", Package: "GnuWin32.CoreUtils"},
	{Tool: "Nmap (ncat)", Manager: "winget", Package: "nmap"},
	{Tool: "curl", Manager: "winget", Package: "curl"},
	{Tool: "Ghidra", Manager: "winget", Package: "NSA.Ghidra"},
	{Tool: "radare2", Manager: "choco", Package: "radare2"},
	{Tool: "Wireshark", Manager: "winget", Package: "WiresharkFoundation.Wireshark"},
	{Tool: "Burp Suite Community", Manager: "winget", Package: "PortSwigger.BurpSuiteCommunity"},
	{Tool: "CyberChef", Manager: "winget", Package: "GCHQ.CyberChef"},
}

var linuxTargets = map[string][]Target{
	"apt": {
		{Tool: "ExifTool", Manager: "apt", Package: "libimage-exiftool-perl"},
		{Tool: "Binwalk", Manager: "apt", Package: "binwalk"},
		{Tool: "zsteg", Manager: "apt", Package: "zsteg"},
		{Tool: "Hashcat", Manager: "apt", Package: "hashcat"},
		{Tool: "John the Ripper", Manager: "apt", Package: "john"},
		{Tool: "GNU Coreutils", Manager: "apt", Package: "coreutils"},
		{Tool: "Nmap (ncat)", Manager: "apt", Package: "nmap"},
		{Tool: "curl", Manager: "apt", Package: "curl"},
		{Tool: "Ghidra", Manager: "apt", Package: "ghidra"},
		{Tool: "radare2", Manager: "apt", Package: "radare2"},
		{Tool: "Wireshark", Manager: "apt", Package: "wireshark"},
		{Tool: "Burp Suite Community", Manager: "apt", Package: "burpsuite"},
		{Tool: "CyberChef", Manager: "apt"},
	},
	"yum": {
		{Tool: "ExifTool", Manager: "yum", Package: "perl-Image-ExifTool"},
		{Tool: "Binwalk", Manager: "yum", Package: "binwalk"},
		{Tool: "zsteg", Manager: "yum", Package: "zsteg"},
		{Tool: "Hashcat", Manager: "yum", Package: "hashcat"},
		{Tool: "John the Ripper", Manager: "yum", Package: "john"},
		{Tool: "GNU Coreutils", Manager: "yum", Package: "coreutils"},
		{Tool: "Nmap (ncat)", Manager: "yum", Package: "nmap"},
		{Tool: "curl", Manager: "yum", Package: "curl"},
		{Tool: "Ghidra", Manager: "yum", Package: "ghidra"},
		{Tool: "radare2", Manager: "yum", Package: "radare2"},
		{Tool: "Wireshark", Manager: "yum", Package: "wireshark"},
		{Tool: "Burp Suite Community", Manager: "yum"},
		{Tool: "CyberChef", Manager: "yum"},
	},
	"dnf": {
		{Tool: "ExifTool", Manager: "dnf", Package: "perl-Image-ExifTool"},
		{Tool: "Binwalk", Manager: "dnf", Package: "binwalk"},
		{Tool: "zsteg", Manager: "dnf", Package: "zsteg"},
		{Tool: "Hashcat", Manager: "dnf", Package: "hashcat"},
		{Tool: "John the Ripper", Manager: "dnf", Package: "john"},
		{Tool: "GNU Coreutils", Manager: "dnf", Package: "coreutils"},
		{Tool: "Nmap (ncat)", Manager: "dnf", Package: "nmap"},
		{Tool: "curl", Manager: "dnf", Package: "curl"},
		{Tool: "Ghidra", Manager: "dnf", Package: "ghidra"},
		{Tool: "radare2", Manager: "dnf", Package: "radare2"},
		{Tool: "Wireshark", Manager: "dnf", Package: "wireshark"},
		{Tool: "Burp Suite Community", Manager: "dnf"},
		{Tool: "CyberChef", Manager: "dnf"},
	},
	"pacman": {
		{Tool: "ExifTool", Manager: "pacman", Package: "perl-image-exiftool"},
		{Tool: "Binwalk", Manager: "pacman", Package: "binwalk"},
		{Tool: "zsteg", Manager: "pacman", Package: "zsteg"},
		{Tool: "Hashcat", Manager: "pacman", Package: "hashcat"},
		{Tool: "John the Ripper", Manager: "pacman", Package: "john"},
		{Tool: "GNU Coreutils", Manager: "pacman", Package: "coreutils"},
		{Tool: "Nmap (ncat)", Manager: "pacman", Package: "nmap"},
		{Tool: "curl", Manager: "pacman", Package: "curl"},
		{Tool: "Ghidra", Manager: "pacman", Package: "ghidra"},
		{Tool: "radare2", Manager: "pacman", Package: "radare2"},
		{Tool: "Wireshark", Manager: "pacman", Package: "wireshark"},
		{Tool: "Burp Suite Community", Manager: "pacman"},
		{Tool: "CyberChef", Manager: "pacman"},
	},
}

var darwinTargets = []Target{
	{Tool: "ExifTool", Manager: "brew", Package: "exiftool"},
	{Tool: "Binwalk", Manager: "brew", Package: "binwalk"},
	{Tool: "zsteg", Manager: "brew", Package: "zsteg"},
	{Tool: "Hashcat", Manager: "brew", Package: "hashcat"},
	{Tool: "John the Ripper", Manager: "brew", Package: "john"},
	{Tool: "GNU Coreutils", Manager: "brew", Package: "coreutils"},
	{Tool: "Nmap (ncat)", Manager: "brew", Package: "nmap"},
	{Tool: "curl", Manager: "brew", Package: "curl"},
	{Tool: "Ghidra", Manager: "brew", Package: "ghidra"},
	{Tool: "radare2", Manager: "brew", Package: "radare2"},
	{Tool: "Wireshark", Manager: "brew", Package: "wireshark"},
	{Tool: "Burp Suite Community", Manager: "brew", Package: "burp-suite-community"},
	{Tool: "CyberChef", Manager: "brew", Package: "cyberchef"},
}
