package query

import (
	"github.com/hfranco/xcl/internal/catalog"
)

// Group collects the matching records that share a printer_model.
type Group struct {
	Model   string           `json:"printer_model"`
	Records []catalog.Record `json:"records"`
}

// Result is the outcome of running a query: matches grouped by
// printer model, plus the total match count.
type Result struct {
	Groups []Group `json:"groups"`
	Total  int     `json:"total"`
}

// Run scans records once, in order, and groups the matches by their
// exact printer_model value. Groups appear in order of first matching
// record; within a group, records keep their relative catalog order.
// Zero matches is a valid result, not an error.
func Run(records []catalog.Record, q Query) Result {
	var res Result
	index := make(map[string]int)

	for _, r := range records {
		if !q.Matches(r) {
			continue
		}
		res.Total++

		i, ok := index[r.PrinterModel]
		if !ok {
			i = len(res.Groups)
			index[r.PrinterModel] = i
			res.Groups = append(res.Groups, Group{Model: r.PrinterModel})
		}
		res.Groups[i].Records = append(res.Groups[i].Records, r)
	}

	return res
}

// Search parses and runs a query in one step.
func Search(records []catalog.Record, field, raw string) (Result, error) {
	q, err := Parse(field, raw)
	if err != nil {
		return Result{}, err
	}
	return Run(records, q), nil
}
