// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-note-sync/models"
)

func renderSummary(s models.PassSummary) string {
	var b strings.Builder

	mode := "incremental"
	if s.FullSync {
		mode = "full"
	}
	b.WriteString(titleStyle.Render("Sync pass ("+mode+")") + "\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "usn\t%d / %d\n", s.HighUSN, s.UpdateCount)
	fmt.Fprintf(tw, "chunks\t%d\n", s.Chunks)
	fmt.Fprintf(tw, "notes\t%d\n", s.Notes)
	fmt.Fprintf(tw, "resources\t%d\n", s.Resources)
	fmt.Fprintf(tw, "images\t%d\n", s.Images)
	fmt.Fprintf(tw, "expunged\t%d\n", s.Expunged)
	fmt.Fprintf(tw, "linked notebooks\t%d\n", s.LinkedNotebooks)
	if !s.StartedAt.IsZero() && !s.FinishedAt.IsZero() {
		fmt.Fprintf(tw, "took\t%s\n", s.FinishedAt.Sub(s.StartedAt).Round(time.Millisecond))
	}
	tw.Flush()

	for _, guid := range s.LinkedFailures {
		b.WriteString(helpStyle.Render("linked notebook "+guid+" failed") + "\n")
	}
	return b.String()
}

func renderState(state models.SyncState, localUSN int32) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Sync state") + "\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "update count\t%d\n", state.UpdateCount)
	fmt.Fprintf(tw, "local usn\t%d\n", localUSN)
	fmt.Fprintf(tw, "pending\t%d\n", max(0, state.UpdateCount-localUSN))
	if state.FullSyncBefore > 0 {
		fmt.Fprintf(tw, "full sync before\t%s\n", time.UnixMilli(state.FullSyncBefore).UTC().Format(time.RFC3339))
	}
	if state.CurrentTime > 0 {
		fmt.Fprintf(tw, "service time\t%s\n", time.UnixMilli(state.CurrentTime).UTC().Format(time.RFC3339))
	}
	tw.Flush()
	return b.String()
}

func renderNotebooks(notebooks []models.Notebook) string {
	if len(notebooks) == 0 {
		return helpStyle.Render("no notebooks") + "\n"
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, titleStyle.Render("GUID")+"\t"+titleStyle.Render("NAME")+"\t"+titleStyle.Render("STACK"))
	for _, n := range notebooks {
		name := n.Name
		if n.DefaultNotebook {
			name += " (default)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.GUID, name, n.Stack)
	}
	tw.Flush()
	return b.String()
}

func renderTags(tags []models.Tag) string {
	if len(tags) == 0 {
		return helpStyle.Render("no tags") + "\n"
	}

	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, titleStyle.Render("GUID")+"\t"+titleStyle.Render("NAME")+"\t"+titleStyle.Render("PARENT"))
	for _, t := range tags {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.GUID, t.Name, t.ParentGUID)
	}
	tw.Flush()
	return b.String()
}
