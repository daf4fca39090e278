package masstable

import (
	"fmt"
	"os"
)

// Pair holds the fusion table of an attribute and the reference table
// projected onto the same categories and time steps.
type Pair struct {
	Fusion    *Table
	Reference *Table
}

// LoadPair reads the fusion and reference files of one attribute. Both files
// are opened before anything is parsed, so a missing file is always reported
// as an fs.ErrNotExist error regardless of the other file's contents.
func LoadPair(fusionPath, referencePath string) (*Pair, error) {
	fusionFile, err := os.Open(fusionPath)
	if err != nil {
		return nil, err
	}
	defer fusionFile.Close()

	referenceFile, err := os.Open(referencePath)
	if err != nil {
		return nil, err
	}
	defer referenceFile.Close()

	fusionRecords, err := ReadRecords(fusionFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fusionPath, err)
	}
	fusion, err := New(fusionRecords)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fusionPath, err)
	}

	referenceRecords, err := ReadRecords(referenceFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", referencePath, err)
	}
	reference, err := fusion.Project(referenceRecords)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", referencePath, err)
	}

	return &Pair{Fusion: fusion, Reference: reference}, nil
}

// Window applies Table.Window to both tables.
func (p *Pair) Window(begin int) (*Pair, error) {
	fusion, err := p.Fusion.Window(begin)
	if err != nil {
		return nil, err
	}
	reference, err := p.Reference.Window(begin)
	if err != nil {
		return nil, err
	}
	return &Pair{Fusion: fusion, Reference: reference}, nil
}
