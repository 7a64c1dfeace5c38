// README: Record handlers: generic add/delete by kind plus completion toggles.
package handlers

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tripkit/internal/modules/record"
	"tripkit/internal/types"
)

type RecordHandler struct {
	records *record.Service
}

func NewRecordHandler(svc *record.Service) *RecordHandler {
	return &RecordHandler{records: svc}
}

// Add creates one child record. The form field "type" selects the kind; the
// remaining fields depend on it. Memories accept an optional "photo" file.
func (h *RecordHandler) Add(c *gin.Context) {
	kind := record.Kind(c.PostForm("type"))
	tripID := types.ID(c.PostForm("trip_id"))
	ctx := c.Request.Context()

	switch kind {
	case record.KindChecklist:
		out, err := h.records.AddChecklist(ctx, &record.Checklist{
			TripID:      tripID,
			Category:    c.PostForm("category"),
			Title:       c.PostForm("title"),
			Description: formPtr(c, "description"),
			Priority:    c.PostForm("priority"),
		})
		respondAdd(c, out, err)

	case record.KindItem:
		out, err := h.records.AddItem(ctx, &record.Item{
			TripID:   tripID,
			Category: c.PostForm("category"),
			Name:     c.PostForm("name"),
			Quantity: formInt(c, "quantity"),
			Notes:    formPtr(c, "notes"),
		})
		respondAdd(c, out, err)

	case record.KindLocalInfo:
		out, err := h.records.AddLocalInfo(ctx, &record.LocalInfo{
			TripID:   tripID,
			Category: c.PostForm("category"),
			Title:    c.PostForm("title"),
			Content:  c.PostForm("content"),
			Address:  formPtr(c, "address"),
			Phone:    formPtr(c, "phone"),
			Website:  formPtr(c, "website"),
			Rating:   formFloatPtr(c, "rating"),
		})
		respondAdd(c, out, err)

	case record.KindExpense:
		out, err := h.records.AddExpense(ctx, &record.Expense{
			TripID:      tripID,
			Category:    c.PostForm("category"),
			Amount:      formFloat(c, "amount"),
			Currency:    c.PostForm("currency"),
			Description: formPtr(c, "description"),
			ExpenseDate: formDate(c, "expense_date"),
		})
		respondAdd(c, out, err)

	case record.KindWishlist:
		out, err := h.records.AddWishlist(ctx, &record.Wishlist{
			TripID:      tripID,
			PlaceName:   c.PostForm("place_name"),
			Category:    c.PostForm("category"),
			Address:     formPtr(c, "address"),
			Description: formPtr(c, "description"),
			Priority:    c.PostForm("priority"),
		})
		respondAdd(c, out, err)

	case record.KindMemory:
		photo, filename, err := formPhoto(c)
		if err != nil {
			writeError(c, http.StatusBadRequest, "invalid photo upload")
			return
		}
		if photo != nil {
			defer photo.Close()
		}
		m := &record.Memory{
			TripID:     tripID,
			Title:      c.PostForm("title"),
			Content:    formPtr(c, "content"),
			MemoryDate: formDate(c, "memory_date"),
			Location:   formPtr(c, "location"),
		}
		var out *record.Memory
		if photo != nil {
			out, err = h.records.AddMemory(ctx, m, photo, filename)
		} else {
			out, err = h.records.AddMemory(ctx, m, nil, "")
		}
		respondAdd(c, out, err)

	default:
		writeError(c, http.StatusBadRequest, "unknown record type")
	}
}

func (h *RecordHandler) Delete(c *gin.Context) {
	kind := record.Kind(c.Param("kind"))
	id := types.ID(c.Param("id"))
	if err := h.records.Delete(c.Request.Context(), kind, id); err != nil {
		writeRecordError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *RecordHandler) ToggleChecklist(c *gin.Context) {
	done, err := h.records.ToggleChecklist(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeRecordError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"is_completed": done})
}

func (h *RecordHandler) ToggleItem(c *gin.Context) {
	packed, err := h.records.ToggleItem(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeRecordError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"is_packed": packed})
}

func (h *RecordHandler) ToggleWishlist(c *gin.Context) {
	visited, err := h.records.ToggleWishlist(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeRecordError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"is_visited": visited})
}

func respondAdd(c *gin.Context, out any, err error) {
	if err != nil {
		writeRecordError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"record": out})
}

func formPtr(c *gin.Context, key string) *string {
	if v := c.PostForm(key); v != "" {
		return &v
	}
	return nil
}

func formInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.PostForm(key))
	return n
}

func formFloat(c *gin.Context, key string) float64 {
	f, _ := strconv.ParseFloat(c.PostForm(key), 64)
	return f
}

func formFloatPtr(c *gin.Context, key string) *float64 {
	v := c.PostForm(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formDate(c *gin.Context, key string) time.Time {
	t, _ := parseDate(c.PostForm(key))
	return t
}

// formPhoto opens the optional "photo" upload. A missing file or a
// non-multipart body simply means no photo.
func formPhoto(c *gin.Context) (multipart.File, string, error) {
	fh, err := c.FormFile("photo")
	if err != nil || fh == nil {
		return nil, "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	return f, fh.Filename, nil
}
