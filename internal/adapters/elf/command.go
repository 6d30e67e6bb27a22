package elf

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// CommandReader implements ports.MetadataReader by running readelf or objdump.
type CommandReader struct {
	tool    string
	command string
	timeout time.Duration
}

// NewCommandReader creates a reader for tool ("readelf" or "objdump").
// command overrides the executable name, e.g. for cross toolchains; empty
// means the tool name itself.
func NewCommandReader(tool, command string, timeout time.Duration) (*CommandReader, error) {
	if tool != domain.MetadataToolReadelf && tool != domain.MetadataToolObjdump {
		return nil, zerr.With(domain.ErrUnknownMetadataTool, "tool", tool)
	}
	if command == "" {
		command = tool
	}
	if timeout <= 0 {
		timeout = domain.DefaultToolTimeout
	}
	return &CommandReader{tool: tool, command: command, timeout: timeout}, nil
}

// Read runs the tool against path and parses its output. Empty output means
// the file is not an ELF binary.
func (r *CommandReader) Read(ctx context.Context, path string) (domain.Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var args []string
	if r.tool == domain.MetadataToolReadelf {
		args = []string{"-h", "-d", "-W", path}
	} else {
		args = []string{"-p", path}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.command, args...) //nolint:gosec // tool is validated, path is an argument
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitCode int
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrMetadataToolFailed.Error()), "exit_code", exitCode)
		wrapped = zerr.With(wrapped, "path", path)
		return domain.Metadata{}, zerr.With(wrapped, "stderr", strings.TrimSpace(stderr.String()))
	}

	var md domain.Metadata
	var ok bool
	if r.tool == domain.MetadataToolReadelf {
		md, ok = ParseReadelf(stdout.Bytes())
	} else {
		md, ok = ParseObjdump(stdout.Bytes())
	}
	if !ok {
		return domain.Metadata{}, zerr.With(domain.ErrNotELF, "path", path)
	}
	return md, nil
}

// ParseReadelf parses the output of `readelf -h -d`. It reports false when
// the output carries neither an ELF header nor a dynamic section.
func ParseReadelf(out []byte) (domain.Metadata, bool) {
	var md domain.Metadata
	var needed, runpath, rpath []string
	found := false

	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "Class:"):
			found = true
			md.Class64 = strings.Contains(line, "ELF64")
		case strings.Contains(line, "(NEEDED)"):
			found = true
			if v, ok := bracketValue(line); ok {
				needed = append(needed, v)
			}
		case strings.Contains(line, "(RUNPATH)"):
			found = true
			if v, ok := bracketValue(line); ok {
				runpath = append(runpath, v)
			}
		case strings.Contains(line, "(RPATH)"):
			found = true
			if v, ok := bracketValue(line); ok {
				rpath = append(rpath, v)
			}
		case strings.Contains(line, "(SONAME)"):
			found = true
			if v, ok := bracketValue(line); ok {
				md.Soname = v
			}
		case strings.HasPrefix(line, "Dynamic section"):
			found = true
		}
	}

	md.Needed = dedupe(needed)
	md.Runpath = SearchHints(runpath, rpath)
	return md, found
}

// ParseObjdump parses the output of `objdump -p`. It reports false when the
// output carries no ELF file format line.
func ParseObjdump(out []byte) (domain.Metadata, bool) {
	var md domain.Metadata
	var needed, runpath, rpath []string
	found := false

	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		if i := strings.Index(line, "file format "); i >= 0 {
			format := strings.TrimSpace(line[i+len("file format "):])
			if strings.HasPrefix(format, "elf") {
				found = true
				md.Class64 = strings.HasPrefix(format, "elf64")
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		switch fields[0] {
		case "NEEDED":
			needed = append(needed, fields[1])
		case "RUNPATH":
			runpath = append(runpath, fields[1])
		case "RPATH":
			rpath = append(rpath, fields[1])
		case "SONAME":
			md.Soname = fields[1]
		}
	}

	md.Needed = dedupe(needed)
	md.Runpath = SearchHints(runpath, rpath)
	return md, found
}

func bracketValue(line string) (string, bool) {
	start := strings.IndexByte(line, '[')
	end := strings.LastIndexByte(line, ']')
	if start < 0 || end <= start {
		return "", false
	}
	return line[start+1 : end], true
}
