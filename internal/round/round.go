// Package round implements the GameRound orchestrator: the single entry
// point that validates, applies, and commits one operation to a History.
package round

import (
	"github.com/lbarnes/chessd/internal/chess"
	"github.com/lbarnes/chessd/internal/engine"
	"github.com/lbarnes/chessd/internal/errkind"
	"github.com/lbarnes/chessd/internal/history"
	"github.com/lbarnes/chessd/internal/zobrist"
)

const (
	drawClaimRepetitions = 3
	drawClaimStreak      = 100
	autoDrawRepetitions  = 5
	autoDrawStreak       = 150
)

// Play runs one round of the game: validates op against the current tail of
// h, applies it to a scratch copy, checks the mover didn't leave their own
// king in check, resolves any draw claim, computes terminal status, and (on
// success) commits the result to h. On failure h is unchanged.
func Play(h *history.History, op chess.Operation) error {
	tail, ok := h.Current()
	if !ok || tail.State.Status != chess.Active {
		return errkind.ErrGameNotActive
	}

	gs := tail.State
	if err := engine.ValidateOperation(&gs, op); err != nil {
		return err
	}

	mover := gs.BoardState.Turn()
	newHash := engine.ApplyOperation(&gs, h.Table, tail.Hash, op)

	if gs.Status == chess.Active {
		kx, ky := gs.KingCoords(mover)
		if chess.PositionAttacked(&gs.BoardState.Board, kx, ky, mover == chess.White) {
			return errkind.Wrapf(errkind.ErrKingLeftInCheck, "%s king at (%d,%d) still attacked after the move", mover, kx, ky)
		}
	}

	cur := zobrist.NewCursor(h.Table, newHash)
	cur.SetTurn(&gs.BoardState, !gs.BoardState.BlackTurn)
	newHash = cur.Hash

	numRepetition := h.CountBoardStateRepetition(gs.BoardState, newHash)

	if op.Code2 == chess.DrawClaim && gs.Status == chess.Active {
		if numRepetition >= drawClaimRepetitions || gs.NoCaptureNoPawnMoveStreak >= drawClaimStreak {
			gs.Status = chess.Draw
		} else {
			return errkind.Wrapf(errkind.ErrInvalidDrawClaim,
				"%d prior repetitions (need %d) and a %d-move no-progress streak (need %d)",
				numRepetition, drawClaimRepetitions, gs.NoCaptureNoPawnMoveStreak, drawClaimStreak)
		}
	}

	if gs.Status == chess.Active {
		opponent := mover.Opponent()
		kx, ky := gs.KingCoords(opponent)
		gs.Check = chess.PositionAttacked(&gs.BoardState.Board, kx, ky, opponent == chess.White)

		if countLegalReplies(h.Table, &gs) == 0 {
			if gs.Check {
				if opponent == chess.White {
					gs.Status = chess.BlackWin
				} else {
					gs.Status = chess.WhiteWin
				}
			} else {
				gs.Status = chess.Draw
			}
		} else if numRepetition >= autoDrawRepetitions || gs.NoCaptureNoPawnMoveStreak >= autoDrawStreak {
			gs.Status = chess.Draw
		}
	}

	h.Push(op, gs, newHash)
	return nil
}

// countLegalReplies applies every generated candidate to a scratch copy and
// counts those that do not leave the mover's own king attacked. The hash
// returned by the scratch apply is discarded; only board/king state matters
// here.
func countLegalReplies(table *zobrist.Table, gs *chess.GameState) int {
	candidates := engine.GenerateCandidates(gs)
	count := 0
	mover := gs.BoardState.Turn()
	for _, cand := range candidates {
		scratch := *gs
		engine.ApplyOperation(&scratch, table, 0, cand)
		kx, ky := scratch.KingCoords(mover)
		if !chess.PositionAttacked(&scratch.BoardState.Board, kx, ky, mover == chess.White) {
			count++
		}
	}
	return count
}
