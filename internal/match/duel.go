// Package match owns battle sessions: the fighters, the shared battle log,
// the turn counter, and the win/draw rules applied between rounds.
package match

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/ewhitmore/trialbycombat/internal/combat"
	"github.com/ewhitmore/trialbycombat/internal/telemetry"
)

// MaxTurns is the round limit; a duel still undecided at the limit is
// settled by comparing remaining HP.
const MaxTurns = 25

// Result reports whether a session has ended and how.
type Result struct {
	Done    bool
	Message string
}

// Duel is a 1v1 session. It owns both fighters and the log for their match;
// nothing carries over when a new duel is created.
type Duel struct {
	ID   uuid.UUID
	P1   *combat.Fighter
	P2   *combat.Fighter
	Log  combat.BattleLog
	Turn int
}

// NewDuel creates a duel with fresh fighters of the given classes.
func NewDuel(ctx context.Context, name1 string, class1 combat.Class, name2 string, class2 combat.Class) *Duel {
	d := &Duel{
		ID:   uuid.New(),
		P1:   combat.NewFighter(name1, class1),
		P2:   combat.NewFighter(name2, class2),
		Turn: 1,
	}

	tracer := telemetry.Tracer("match")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("match_id", d.ID.String()),
		attribute.String("p1_class", class1.ID()),
		attribute.String("p2_class", class2.ID()),
	)
	span.End()

	return d
}

// PlayRound clears the log, resolves one round with the chosen move indices,
// and reports the outcome. The turn counter advances only when the duel
// continues.
func (d *Duel) PlayRound(ctx context.Context, moveA, moveB int, src combat.Source) Result {
	ctx, span := telemetry.Tracer("match").Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.String("match_id", d.ID.String()),
		attribute.Int("turn", d.Turn),
	)
	defer span.End()

	d.Log.Clear()
	combat.ResolveTurn(d.P1, d.P2, moveA, moveB, &d.Log, src)

	res := d.result()
	if res.Done {
		d.end(ctx, res)
	} else {
		d.Turn++
	}
	return res
}

// result applies the between-round rules: a fighter at zero HP loses (both
// at zero is a draw), and at the turn limit the higher HP wins.
func (d *Duel) result() Result {
	down1 := !d.P1.IsAlive()
	down2 := !d.P2.IsAlive()
	switch {
	case down1 && down2:
		return Result{Done: true, Message: "DRAW! Both fell!"}
	case down1:
		return Result{Done: true, Message: fmt.Sprintf("%s WINS!", d.P2.Name)}
	case down2:
		return Result{Done: true, Message: fmt.Sprintf("%s WINS!", d.P1.Name)}
	}

	if d.Turn >= MaxTurns {
		switch {
		case d.P1.HP > d.P2.HP:
			return Result{Done: true, Message: fmt.Sprintf("%s WINS by HP!", d.P1.Name)}
		case d.P2.HP > d.P1.HP:
			return Result{Done: true, Message: fmt.Sprintf("%s WINS by HP!", d.P2.Name)}
		default:
			return Result{Done: true, Message: "DRAW! Equal HP!"}
		}
	}
	return Result{}
}

func (d *Duel) end(ctx context.Context, res Result) {
	_, span := telemetry.Tracer("match").Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("match_id", d.ID.String()),
		attribute.String("outcome", res.Message),
		attribute.Int("turns_taken", d.Turn),
		attribute.Int("p1_hp_remaining", d.P1.DisplayHP()),
		attribute.Int("p2_hp_remaining", d.P2.DisplayHP()),
	)
	span.End()
}
