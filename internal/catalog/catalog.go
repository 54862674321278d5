package catalog

// Tool describes one entry in the selector: the command the resolver looks
// up, display metadata, and example invocations. Entries are never mutated
// after construction.
type Tool struct {
	Name        string
	Command     string
	Description string
	Examples    []string
}

var builtin = []Tool{
	{
		Name:    "ExifTool",
		Command: "exiftool",
		Description: "Metadata extractor for almost any file format. Great for spotting " +
			"hidden data, timestamps, GPS info, and camera details.",
		Examples: []string{
			"exiftool suspicious.jpg",
			"exiftool -ver",
			"exiftool -a -G1 -s image.png",
		},
	},
	{
		Name:    "Binwalk",
		Command: "binwalk",
		Description: "Firmware and binary analysis tool. Scans files for embedded files, " +
			"signatures, and compressed data.",
		Examples: []string{
			"binwalk firmware.bin",
			"binwalk -e firmware.bin",
			"binwalk -E -M target.img",
		},
	},
	{
		Name:    "zsteg",
		Command: "zsteg",
		Description: "Detects steganographic payloads in PNG/BMP files, focusing on LSB " +
			"encodings. Supports quick brute-force searches.",
		Examples: []string{
			"zsteg secret.png",
			"zsteg -E b1,bgr,msb secret.bmp",
			"zsteg -a suspicious.png",
		},
	},
	{
		Name:    "Hashcat",
		Command: "hashcat",
		Description: "GPU-accelerated password cracker supporting numerous hash formats. " +
			"Requires specifying hash mode and attack strategy.",
		Examples: []string{
			"hashcat -m 0 hashes.txt wordlist.txt",
			"hashcat -I  # list available devices",
			"hashcat -m 1000 hash.txt -a 0 rockyou.txt",
		},
	},
	{
		Name:        "John the Ripper",
		Command:     "john",
		Description: "CPU-based password cracker with smart rules and format autodetection.",
		Examples: []string{
			"john hashes.txt",
			"john --wordlist=rockyou.txt hashes.txt",
			"john --show hashes.txt",
		},
	},
	{
		Name:    "GNU Coreutils (strings/xxd/etc.)",
		Command: "strings",
		Description: "Collection of Unix utilities for Windows (strings, xxd, base64, cut, " +
			"sort, etc.). Uses whichever binary you invoke.",
		Examples: []string{
			"strings -n 6 binary.bin",
			"xxd file.bin | head",
			"base64 -d payload.b64 > payload.bin",
		},
	},
	{
		Name:    "ncat (from Nmap)",
		Command: "ncat",
		Description: "Flexible networking swiss-army knife for TCP/UDP sockets, relays, " +
			"and port listeners. Compatible with traditional netcat syntax.",
		Examples: []string{
			"ncat -lvnp 9001",
			"ncat target 80",
			"ncat --ssl target 443",
		},
	},
	{
		Name:    "curl",
		Command: "curl",
		Description: "Command-line data transfer tool supporting HTTP(S), FTP, and more. " +
			"Handy for API probing and quick downloads.",
		Examples: []string{
			"curl https://example.com",
			"curl -I https://target",
			"curl -o dump.bin https://host/file.bin",
		},
	},
	{
		Name:    "Ghidra",
		Command: "ghidraRun",
		Description: "NSA's reverse-engineering suite for binaries and APKs. Launches a GUI " +
			"workspace with disassemblers, decompilers, and scripting support.",
		Examples: []string{
			"ghidraRun",
			"ghidraRun project_name",
			"ghidraRun &  # launch in background on Linux/macOS",
		},
	},
	{
		Name:    "radare2",
		Command: "radare2",
		Description: "Lightweight reversing framework with command-line UI. Includes r2, " +
			"Cutter GUI, and many utilities for static/dynamic analysis.",
		Examples: []string{
			"radare2 binary.bin",
			"radare2 -d ./a.out  # debug mode",
			"radare2 -qc 'aaa; s main; pdf' binary.bin",
		},
	},
	{
		Name:    "Wireshark",
		Command: "wireshark",
		Description: "Packet capture and analysis GUI with dissectors for hundreds of " +
			"protocols. Launch with admin rights to capture live interfaces.",
		Examples: []string{
			"wireshark",
			"wireshark -r capture.pcapng",
			`tshark -r capture.pcap -Y "http"`,
		},
	},
	{
		Name:    "Burp Suite Community",
		Command: "burpsuite",
		Description: "Web proxy/interceptor for web-app testing. Community edition is GUI " +
			"only; start the listener and browse through the proxy.",
		Examples: []string{
			"burpsuite",
			"burpsuitecommunity",
			"start burpsuite  # Windows launch",
		},
	},
	{
		Name:    "CyberChef",
		Command: "cyberchef",
		Description: "Browser-based Swiss-army knife for encodings, crypto, and data " +
			"manipulation. Desktop build opens a local Electron wrapper.",
		Examples: []string{
			"cyberchef",
			"start cyberchef  # Windows Electron build",
			"python -m webbrowser https://gchq.github.io/CyberChef/",
		},
	},
}

// Builtin returns the fixed tool list in menu order.
func Builtin() []Tool {
	out := make([]Tool, len(builtin))
	copy(out, builtin)
	return out
}

// Selection is the interpretation of a menu ordinal.
type Selection int

const (
	SelectionExit Selection = iota
	SelectionTool
	SelectionInvalid
)

// Select maps a 1-based ordinal onto the tool list. Zero means exit; any
// ordinal outside [0, len(tools)] is invalid. Neither is an error.
func Select(tools []Tool, ordinal int) (Tool, Selection) {
	if ordinal == 0 {
		return Tool{}, SelectionExit
	}
	if ordinal < 0 || ordinal > len(tools) {
		return Tool{}, SelectionInvalid
	}
	return tools[ordinal-1], SelectionTool
}
