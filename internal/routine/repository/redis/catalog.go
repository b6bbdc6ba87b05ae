package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"slack-routine-bot/internal/model"
	"slack-routine-bot/internal/routine/repository"
	"slack-routine-bot/pkg/daytime"
)

// taskRecord is the stored catalog entry. Days is kept raw because the
// catalog format allows either the string "all" or an explicit weekday
// list.
type taskRecord struct {
	Name     string          `json:"name"`
	Deadline string          `json:"deadline,omitempty"`
	Days     json.RawMessage `json:"days,omitempty"`
	Period   string          `json:"period,omitempty"`
	AsanaURL string          `json:"asana_url,omitempty"`
	Comments string          `json:"comments,omitempty"`
}

func (r *implRepository) ListTasks(ctx context.Context) ([]model.TaskDefinition, error) {
	if cached, ok := r.catalogCache.Get(keyTaskBase); ok {
		return cached, nil
	}

	raw, err := r.client.Get(ctx, keyTaskBase).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load task base: %w", err)
	}

	var records map[string]taskRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("task base is not valid JSON: %w", err)
	}

	tasks := make([]model.TaskDefinition, 0, len(records))
	seenNames := make(map[string]string, len(records))

	for id, rec := range records {
		def, err := r.decodeRecord(ctx, id, rec)
		if err != nil {
			// Malformed entries are skipped individually; the rest of the
			// catalog must stay loadable.
			r.l.Warnf(ctx, "catalog: skipping entry %q: %v", id, err)
			continue
		}

		norm := model.NormalizeTaskName(def.Name)
		if prev, dup := seenNames[norm]; dup {
			r.l.Warnf(ctx, "catalog: entry %q duplicates name of %q, skipping", id, prev)
			continue
		}
		seenNames[norm] = id

		tasks = append(tasks, def)
	}

	r.catalogCache.Add(keyTaskBase, tasks)
	return tasks, nil
}

func (r *implRepository) SaveTask(ctx context.Context, def model.TaskDefinition) error {
	if def.ID == "" || def.Name == "" {
		return fmt.Errorf("task id and name are required")
	}

	raw, err := r.client.Get(ctx, keyTaskBase).Bytes()
	records := map[string]taskRecord{}
	if err == nil {
		if jsonErr := json.Unmarshal(raw, &records); jsonErr != nil {
			return fmt.Errorf("task base is not valid JSON: %w", jsonErr)
		}
	} else if err != goredis.Nil {
		return fmt.Errorf("failed to load task base: %w", err)
	}

	records[def.ID] = encodeRecord(def)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal task base: %w", err)
	}
	if err := r.client.Set(ctx, keyTaskBase, data, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrWriteFailed, err)
	}

	r.catalogCache.Remove(keyTaskBase)
	return nil
}

// decodeRecord validates one stored entry into a TaskDefinition. A
// deadline that fails to parse degrades to "no deadline" rather than
// rejecting the entry.
func (r *implRepository) decodeRecord(ctx context.Context, id string, rec taskRecord) (model.TaskDefinition, error) {
	if strings.TrimSpace(rec.Name) == "" {
		return model.TaskDefinition{}, fmt.Errorf("missing name")
	}

	def := model.TaskDefinition{
		ID:       id,
		Name:     strings.TrimSpace(rec.Name),
		Period:   model.Period(rec.Period),
		AsanaURL: rec.AsanaURL,
		Comments: rec.Comments,
	}

	switch def.Period {
	case model.PeriodNone, model.PeriodMorning, model.PeriodEvening:
	default:
		return model.TaskDefinition{}, fmt.Errorf("unknown period %q", rec.Period)
	}

	if rec.Deadline != "" {
		ct, err := daytime.ParseClockTime(rec.Deadline)
		if err != nil {
			r.l.Warnf(ctx, "catalog: entry %q has unparseable deadline %q, treating as none: %v", id, rec.Deadline, err)
		} else {
			def.Deadline = &ct
		}
	}

	days, err := decodeDays(rec.Days)
	if err != nil {
		return model.TaskDefinition{}, err
	}
	def.Days = days

	return def, nil
}

// decodeDays accepts "all", a single weekday string, or a weekday list.
// Weekday names are case-normalized; unknown names fail the entry.
func decodeDays(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if strings.EqualFold(s, model.DaysAll) {
			return nil, nil
		}
		wd, ok := daytime.NormalizeWeekday(s)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", s)
		}
		return []string{wd}, nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("days must be %q or a weekday list", model.DaysAll)
	}

	out := make([]string, 0, len(list))
	for _, name := range list {
		wd, ok := daytime.NormalizeWeekday(name)
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		out = append(out, wd)
	}
	return out, nil
}

func encodeRecord(def model.TaskDefinition) taskRecord {
	rec := taskRecord{
		Name:     def.Name,
		Period:   string(def.Period),
		AsanaURL: def.AsanaURL,
		Comments: def.Comments,
	}
	if def.Deadline != nil {
		rec.Deadline = def.Deadline.String()
	}
	if len(def.Days) > 0 {
		rec.Days, _ = json.Marshal(def.Days)
	}
	return rec
}
