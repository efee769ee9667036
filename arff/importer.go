// Package arff reads the subset of the ARFF format used by the training
// pipeline: NUMERIC feature attributes, one enumerated class attribute, and
// comma-separated data rows.
package arff

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	readLineMax    = 5000
	tokenLengthMax = 35

	keywordAttribute = "@ATTRIBUTE"
	keywordData      = "@DATA"
	keywordNumeric   = "NUMERIC"
)

// classColumn marks the class attribute's position in the declaration order.
const classColumn = -1

// NumericAttr describes one NUMERIC feature column together with the
// statistics accumulated over all data rows. Min <= Mean <= Max holds once
// Read has returned successfully.
type NumericAttr struct {
	Name string
	Min  float64
	Max  float64
	Mean float64
}

// Importer parses an ARFF file into a row-major feature matrix, a class
// index vector, and per-feature statistics. The accessors are valid only
// after Read has returned nil.
type Importer struct {
	classVec   []string
	featureVec []NumericAttr

	// columns holds, per declared attribute in declaration order, the
	// feature index the attribute maps to, or classColumn.
	columns []int

	featureBuff      []float64
	featureBuffTrans []float64
	classIndexBuff   []uint16

	numInstances int
}

// Read parses the ARFF file at path. On failure the importer's state is
// unspecified and must not be used.
func (im *Importer) Read(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "error opening dataset")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, readLineMax+1), readLineMax+1)

	var sums []float64
	var inData bool
	var lineNum int
	for scanner.Scan() {
		lineNum++
		if len(scanner.Bytes()) > readLineMax {
			return &MalformedInputError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("line exceeds %d characters", readLineMax),
			}
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !inData {
			switch {
			case line == keywordData:
				inData = true
				sums = make([]float64, len(im.featureVec))
			case strings.HasPrefix(line, keywordAttribute):
				if err := im.parseAttribute(path, lineNum, line); err != nil {
					return err
				}
			}
			// any other header line is ignored
			continue
		}

		if err := im.parseRow(path, lineNum, line, sums); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return &MalformedInputError{
				Path:   path,
				Line:   lineNum + 1,
				Reason: fmt.Sprintf("line exceeds %d characters", readLineMax),
			}
		}
		return errors.Wrap(err, "error reading dataset")
	}

	if !inData {
		return &MalformedInputError{Path: path, Reason: "missing @DATA section"}
	}
	if len(im.classVec) == 0 {
		return &MalformedInputError{Path: path, Reason: "no class attribute declared"}
	}

	if im.numInstances > 0 {
		for i := range im.featureVec {
			im.featureVec[i].Mean = sums[i] / float64(im.numInstances)
		}
	}
	return nil
}

func (im *Importer) parseAttribute(path string, lineNum int, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return &MalformedInputError{
			Path:   path,
			Line:   lineNum,
			Reason: "attribute declaration must be \"@ATTRIBUTE <name> <type>\"",
		}
	}
	name, typ := fields[1], fields[2]
	if len(name) > tokenLengthMax {
		return &MalformedInputError{
			Path:   path,
			Line:   lineNum,
			Reason: fmt.Sprintf("attribute name exceeds %d characters", tokenLengthMax),
		}
	}

	if typ == keywordNumeric {
		im.columns = append(im.columns, len(im.featureVec))
		im.featureVec = append(im.featureVec, NumericAttr{Name: name})
		return nil
	}

	if !strings.HasPrefix(typ, "{") || !strings.HasSuffix(typ, "}") {
		return &MalformedInputError{
			Path:   path,
			Line:   lineNum,
			Reason: fmt.Sprintf("unrecognized attribute type %q", typ),
		}
	}
	if im.classVec != nil {
		return &MalformedInputError{
			Path:   path,
			Line:   lineNum,
			Reason: "duplicate class attribute declaration",
		}
	}
	labels := strings.Split(strings.Trim(typ, "{}"), ",")
	for _, label := range labels {
		if label == "" {
			return &MalformedInputError{
				Path:   path,
				Line:   lineNum,
				Reason: "empty class label",
			}
		}
		if len(label) > tokenLengthMax {
			return &MalformedInputError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("class label exceeds %d characters", tokenLengthMax),
			}
		}
		im.classVec = append(im.classVec, label)
	}
	im.columns = append(im.columns, classColumn)
	return nil
}

func (im *Importer) parseRow(path string, lineNum int, line string, sums []float64) error {
	tokens := strings.Split(line, ",")
	if len(tokens) != len(im.columns) {
		return &MalformedInputError{
			Path:   path,
			Line:   lineNum,
			Reason: fmt.Sprintf("expected %d values, got %d", len(im.columns), len(tokens)),
		}
	}

	for col, token := range tokens {
		token = strings.TrimSpace(token)
		if len(token) > tokenLengthMax {
			return &MalformedInputError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("value exceeds %d characters", tokenLengthMax),
			}
		}

		fi := im.columns[col]
		if fi == classColumn {
			ci := im.classIndexOf(token)
			if ci < 0 {
				return &MalformedInputError{
					Path:   path,
					Line:   lineNum,
					Reason: fmt.Sprintf("unknown class label %q", token),
				}
			}
			im.classIndexBuff = append(im.classIndexBuff, uint16(ci))
			continue
		}

		val, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return &MalformedInputError{
				Path:   path,
				Line:   lineNum,
				Reason: fmt.Sprintf("non-numeric value %q in NUMERIC attribute %s", token, im.featureVec[fi].Name),
			}
		}
		if im.numInstances == 0 || val < im.featureVec[fi].Min {
			im.featureVec[fi].Min = val
		}
		if im.numInstances == 0 || val > im.featureVec[fi].Max {
			im.featureVec[fi].Max = val
		}
		sums[fi] += val
		im.featureBuff = append(im.featureBuff, val)
	}

	im.numInstances++
	return nil
}

func (im *Importer) classIndexOf(label string) int {
	for i, c := range im.classVec {
		if c == label {
			return i
		}
	}
	return -1
}

// NumInstances returns the number of data rows parsed.
func (im *Importer) NumInstances() int {
	return im.numInstances
}

// Features returns the NUMERIC attributes in declaration order.
func (im *Importer) Features() []NumericAttr {
	return im.featureVec
}

// ClassAttr returns the class labels in declaration order.
func (im *Importer) ClassAttr() []string {
	return im.classVec
}

// FeatureBuff returns the feature matrix in row-major order, one row per
// instance and one column per NUMERIC attribute.
func (im *Importer) FeatureBuff() []float64 {
	return im.featureBuff
}

// FeatureBuffTrans returns the feature matrix in column-major order. It is
// built lazily from the row-major buffer on first call.
func (im *Importer) FeatureBuffTrans() []float64 {
	if im.featureBuffTrans == nil && im.featureBuff != nil {
		numFeatures := len(im.featureVec)
		im.featureBuffTrans = make([]float64, len(im.featureBuff))
		for j := 0; j < im.numInstances; j++ {
			for i := 0; i < numFeatures; i++ {
				im.featureBuffTrans[i*im.numInstances+j] = im.featureBuff[j*numFeatures+i]
			}
		}
	}
	return im.featureBuffTrans
}

// ClassIndex returns, per instance, the index of its label in ClassAttr.
func (im *Importer) ClassIndex() []uint16 {
	return im.classIndexBuff
}
