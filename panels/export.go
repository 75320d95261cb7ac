package panels

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ghodss/yaml"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteCSV writes a header and one row per panel, columns as in ColumnNames
func WriteCSV(w io.Writer, s Set) (err error) {
	writer := csv.NewWriter(w)
	if err = writer.Write(ColumnNames); err != nil {
		return
	}
	M := s.Matrix()
	record := make([]string, NumCols)
	for i, p := range s {
		for j := 0; j < ColUpper; j++ {
			record[j] = formatFloat(M.At(i, j))
		}
		record[ColUpper] = strconv.FormatBool(p.Upper)
		if err = writer.Write(record); err != nil {
			return
		}
	}
	writer.Flush()
	return writer.Error()
}

type PanelRecord struct {
	A      [2]float64 `json:"a"`
	B      [2]float64 `json:"b"`
	Center [2]float64 `json:"center"`
	Length float64    `json:"length"`
	Beta   float64    `json:"beta"`
	Upper  bool       `json:"upper"`
}

type Document struct {
	Name      string        `json:"name"`
	NumPanels int           `json:"numPanels"`
	Perimeter float64       `json:"perimeter"`
	Panels    []PanelRecord `json:"panels"`
}

func NewDocument(name string, s Set) (doc Document) {
	doc = Document{
		Name:      name,
		NumPanels: len(s),
		Perimeter: s.Perimeter(),
		Panels:    make([]PanelRecord, len(s)),
	}
	for i, p := range s {
		doc.Panels[i] = PanelRecord{
			A:      p.PointA.X,
			B:      p.PointB.X,
			Center: p.Center.X,
			Length: p.Length,
			Beta:   p.Beta,
			Upper:  p.Upper,
		}
	}
	return
}

func WriteYAML(w io.Writer, name string, s Set) (err error) {
	var (
		data []byte
	)
	if data, err = yaml.Marshal(NewDocument(name, s)); err != nil {
		return
	}
	_, err = w.Write(data)
	return
}

func ReadYAML(data []byte) (doc Document, err error) {
	err = yaml.Unmarshal(data, &doc)
	return
}
