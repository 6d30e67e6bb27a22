// Package elftest writes minimal dynamic ELF files for tests.
//
// The files carry only a .dynstr, a .dynamic and a section name table, which
// is everything debug/elf needs to answer DT_NEEDED, DT_RUNPATH, DT_RPATH and
// DT_SONAME queries.
package elftest

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Fixture describes the dynamic section of a synthetic binary.
type Fixture struct {
	Needed  []string
	Runpath string
	Rpath   string
	Soname  string
	// Class32 produces an ELFCLASS32 file instead of ELFCLASS64.
	Class32 bool
}

type dynEntry struct {
	tag elf.DynTag
	val uint64
}

// Bytes renders the ELF image described by s.
func Bytes(s Fixture) []byte {
	dynstr := []byte{0}
	addString := func(v string) uint64 {
		off := uint64(len(dynstr))
		dynstr = append(dynstr, v...)
		dynstr = append(dynstr, 0)
		return off
	}

	var entries []dynEntry
	for _, n := range s.Needed {
		entries = append(entries, dynEntry{elf.DT_NEEDED, addString(n)})
	}
	if s.Soname != "" {
		entries = append(entries, dynEntry{elf.DT_SONAME, addString(s.Soname)})
	}
	if s.Runpath != "" {
		entries = append(entries, dynEntry{elf.DT_RUNPATH, addString(s.Runpath)})
	}
	if s.Rpath != "" {
		entries = append(entries, dynEntry{elf.DT_RPATH, addString(s.Rpath)})
	}
	entries = append(entries, dynEntry{elf.DT_NULL, 0})

	shstrtab := []byte("\x00.dynstr\x00.dynamic\x00.shstrtab\x00")
	const (
		nameDynstr   = 1
		nameDynamic  = 9
		nameShstrtab = 18
	)

	if s.Class32 {
		return build32(dynstr, entries, shstrtab, nameDynstr, nameDynamic, nameShstrtab)
	}
	return build64(dynstr, entries, shstrtab, nameDynstr, nameDynamic, nameShstrtab)
}

func ident(class elf.Class) [elf.EI_NIDENT]byte {
	var id [elf.EI_NIDENT]byte
	copy(id[:], elf.ELFMAG)
	id[elf.EI_CLASS] = byte(class)
	id[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	id[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	id[elf.EI_OSABI] = byte(elf.ELFOSABI_NONE)
	return id
}

func align(buf *bytes.Buffer, n int) {
	for buf.Len()%n != 0 {
		buf.WriteByte(0)
	}
}

func build64(dynstr []byte, entries []dynEntry, shstrtab []byte, nDynstr, nDynamic, nShstrtab uint32) []byte {
	const ehsize = 64
	var body bytes.Buffer
	body.Write(make([]byte, ehsize))

	dynstrOff := body.Len()
	body.Write(dynstr)
	align(&body, 8)

	dynOff := body.Len()
	for _, e := range entries {
		_ = binary.Write(&body, binary.LittleEndian, int64(e.tag))
		_ = binary.Write(&body, binary.LittleEndian, e.val)
	}
	dynSize := body.Len() - dynOff

	shstrOff := body.Len()
	body.Write(shstrtab)
	align(&body, 8)

	shOff := body.Len()
	sections := []elf.Section64{
		{},
		{
			Name: nDynstr, Type: uint32(elf.SHT_STRTAB), Flags: uint64(elf.SHF_ALLOC),
			Off: uint64(dynstrOff), Size: uint64(len(dynstr)), Addralign: 1,
		},
		{
			Name: nDynamic, Type: uint32(elf.SHT_DYNAMIC), Flags: uint64(elf.SHF_ALLOC | elf.SHF_WRITE),
			Off: uint64(dynOff), Size: uint64(dynSize), Link: 1, Addralign: 8, Entsize: 16,
		},
		{
			Name: nShstrtab, Type: uint32(elf.SHT_STRTAB),
			Off: uint64(shstrOff), Size: uint64(len(shstrtab)), Addralign: 1,
		},
	}
	for i := range sections {
		_ = binary.Write(&body, binary.LittleEndian, &sections[i])
	}

	hdr := elf.Header64{
		Ident:     ident(elf.ELFCLASS64),
		Type:      uint16(elf.ET_DYN),
		Machine:   uint16(elf.EM_AARCH64),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     uint64(shOff),
		Ehsize:    ehsize,
		Phentsize: 56,
		Shentsize: 64,
		Shnum:     uint16(len(sections)),
		Shstrndx:  3,
	}
	var head bytes.Buffer
	_ = binary.Write(&head, binary.LittleEndian, &hdr)

	out := body.Bytes()
	copy(out, head.Bytes())
	return out
}

func build32(dynstr []byte, entries []dynEntry, shstrtab []byte, nDynstr, nDynamic, nShstrtab uint32) []byte {
	const ehsize = 52
	var body bytes.Buffer
	body.Write(make([]byte, ehsize))

	dynstrOff := body.Len()
	body.Write(dynstr)
	align(&body, 4)

	dynOff := body.Len()
	for _, e := range entries {
		_ = binary.Write(&body, binary.LittleEndian, int32(e.tag))
		_ = binary.Write(&body, binary.LittleEndian, uint32(e.val))
	}
	dynSize := body.Len() - dynOff

	shstrOff := body.Len()
	body.Write(shstrtab)
	align(&body, 4)

	shOff := body.Len()
	sections := []elf.Section32{
		{},
		{
			Name: nDynstr, Type: uint32(elf.SHT_STRTAB), Flags: uint32(elf.SHF_ALLOC),
			Off: uint32(dynstrOff), Size: uint32(len(dynstr)), Addralign: 1,
		},
		{
			Name: nDynamic, Type: uint32(elf.SHT_DYNAMIC), Flags: uint32(elf.SHF_ALLOC | elf.SHF_WRITE),
			Off: uint32(dynOff), Size: uint32(dynSize), Link: 1, Addralign: 4, Entsize: 8,
		},
		{
			Name: nShstrtab, Type: uint32(elf.SHT_STRTAB),
			Off: uint32(shstrOff), Size: uint32(len(shstrtab)), Addralign: 1,
		},
	}
	for i := range sections {
		_ = binary.Write(&body, binary.LittleEndian, &sections[i])
	}

	hdr := elf.Header32{
		Ident:     ident(elf.ELFCLASS32),
		Type:      uint16(elf.ET_DYN),
		Machine:   uint16(elf.EM_ARM),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     uint32(shOff),
		Ehsize:    ehsize,
		Phentsize: 32,
		Shentsize: 40,
		Shnum:     uint16(len(sections)),
		Shstrndx:  3,
	}
	var head bytes.Buffer
	_ = binary.Write(&head, binary.LittleEndian, &hdr)

	out := body.Bytes()
	copy(out, head.Bytes())
	return out
}

// WriteFile writes the ELF image described by s to path, creating parent
// directories. The file is marked executable.
func WriteFile(path string, s Fixture) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, Bytes(s), 0o755) //nolint:gosec // test fixtures are executables
}

// Write is WriteFile for tests; it fails t on error.
func Write(t testing.TB, path string, s Fixture) {
	t.Helper()
	if err := WriteFile(path, s); err != nil {
		t.Fatalf("failed to write ELF fixture %s: %v", path, err)
	}
}
