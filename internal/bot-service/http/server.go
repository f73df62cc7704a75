package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/twod-bot-poc/internal/bot-service/bet"
	"github.com/radieske/twod-bot-poc/internal/bot-service/cache"
	"github.com/radieske/twod-bot-poc/internal/bot-service/dto"
	"github.com/radieske/twod-bot-poc/internal/bot-service/repo"
	"github.com/radieske/twod-bot-poc/internal/bot-service/ws"
	"github.com/radieske/twod-bot-poc/pkg/contracts/events"
)

// Comandos de resumo aceitos no chat. Qualquer outro texto é tratado como
// possível lista de apostas.
const (
	cmdSummary            = "/sum"
	cmdSummaryUser        = "/sumuser"
	cmdMorningSummary     = "/morningsum"
	cmdMorningSummaryUser = "/morningsumuser"
)

// Resposta fixa quando o conjunto de registros (após filtro) está vazio.
// É uma mensagem própria, nunca um relatório em branco.
const noDataMessage = "no data found for summary"

const summaryCacheTTL = 30 * time.Second

// Repo é o que o servidor precisa do armazenamento de apostas.
type Repo interface {
	InsertBet(ctx context.Context, r *repo.BetRecord) (string, error)
	ListByChat(ctx context.Context, chatID string) ([]bet.Record, error)
}

// Sender entrega texto de volta ao chat de origem.
type Sender interface {
	SendText(ctx context.Context, chatID, text string) error
}

// Publisher emite o evento de aposta registrada.
type Publisher interface {
	PublishBetRecorded(ctx context.Context, e events.BetRecorded) error
}

// ReportCache guarda relatórios formatados por chat/modo. Pode ser nil.
type ReportCache interface {
	Get(ctx context.Context, chatID, mode string) (string, bool, error)
	Set(ctx context.Context, chatID, mode, report string, ttl time.Duration) error
	Invalidate(ctx context.Context, chatID string) error
}

// TotalsReader consulta os totais correntes mantidos pelo ledger-worker.
type TotalsReader interface {
	Totals(ctx context.Context, chatID string) (map[string]int64, error)
}

// Server recebe o webhook do chat, roteia comandos e responde pelo Sender.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Server struct {
	log    *zap.Logger
	repo   Repo
	tg     Sender
	publ   Publisher
	cache  ReportCache
	totals TotalsReader
	hub    *ws.Hub

	OnUpdate  func()       // métricas (counter++)
	OnBets    func(int)    // métricas: apostas registradas
	OnSummary func(string) // métricas por modo
	OnError   func(string) // métricas por fase
}

func NewServer(log *zap.Logger, r Repo, tg Sender, p Publisher, c ReportCache, t TotalsReader, hub *ws.Hub) *Server {
	return &Server{log: log, repo: r, tg: tg, publ: p, cache: c, totals: t, hub: hub}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/telegram/webhook", s.handleWebhook) // updates do transporte de entrada
	if s.totals != nil {
		r.Get("/v1/chats/{chatID}/totals", s.chatTotals) // totais correntes do ledger
	}
	if s.hub != nil {
		r.Get("/ws", s.hub.HandleWS) // feed ao vivo de apostas por chat
	}
	return r
}

// chatTotals serve os totais correntes por número direto do hash Redis
// mantido pelo ledger-worker
func (s *Server) chatTotals(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	totals, err := s.totals.Totals(r.Context(), chatID)
	if err != nil {
		s.log.Error("ledger totals failed", zap.String("chat", chatID), zap.Error(err))
		if s.OnError != nil {
			s.OnError("totals")
		}
		writeJSONStatus(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	numbers := make([]string, 0, len(totals))
	for n := range totals {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers) // mesma ordem dos relatórios

	out := make([]chatTotal, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, chatTotal{Number: n, Total: totals[n]})
	}
	writeJSONStatus(w, http.StatusOK, out)
}

type chatTotal struct {
	Number string `json:"number"`
	Total  int64  `json:"total"`
}

// handleWebhook sempre responde 200 para o transporte não reenviar o update;
// falhas de processamento são logadas e contadas, nunca propagadas.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	defer writeJSON(w, map[string]bool{"ok": true})

	if s.OnUpdate != nil {
		s.OnUpdate()
	}

	var upd dto.Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.log.Warn("webhook decode failed", zap.Error(err))
		if s.OnError != nil {
			s.OnError("decode")
		}
		return
	}
	if upd.Message == nil || strings.TrimSpace(upd.Message.Text) == "" {
		return // nada a fazer
	}

	chatID := upd.Message.ChatID()
	sender := upd.Message.From.DisplayName()
	text := strings.TrimSpace(upd.Message.Text)

	switch text {
	case cmdSummary:
		s.summary(r.Context(), chatID, cache.ModeTotal, false, false)
	case cmdSummaryUser:
		s.summary(r.Context(), chatID, cache.ModeUser, true, false)
	case cmdMorningSummary:
		s.summary(r.Context(), chatID, cache.ModeMorning, false, true)
	case cmdMorningSummaryUser:
		s.summary(r.Context(), chatID, cache.ModeMorningUser, true, true)
	default:
		s.record(r.Context(), chatID, sender, text)
	}
}

// record roda o parser sobre o texto e persiste cada aposta reconhecida.
// Texto sem nenhuma aposta válida é ignorado em silêncio.
func (s *Server) record(ctx context.Context, chatID, sender, text string) {
	bets := bet.Parse(text)
	if len(bets) == 0 {
		return
	}

	var stored int
	var total int64
	for _, b := range bets {
		id, err := s.repo.InsertBet(ctx, &repo.BetRecord{
			ChatID: chatID,
			Sender: sender,
			Number: b.Number,
			Amount: b.Amount,
		})
		if err != nil {
			s.log.Error("insert bet failed", zap.String("chat", chatID), zap.Error(err))
			if s.OnError != nil {
				s.OnError("insert")
			}
			continue
		}
		stored++
		total += b.Amount

		if err := s.publ.PublishBetRecorded(ctx, events.BetRecorded{
			BetID:  id,
			ChatID: chatID,
			Sender: sender,
			Number: b.Number,
			Amount: b.Amount,
		}); err != nil {
			s.log.Warn("publish bet_recorded failed", zap.Error(err))
			if s.OnError != nil {
				s.OnError("publish")
			}
		}
	}
	if stored == 0 {
		return
	}
	if s.OnBets != nil {
		s.OnBets(stored)
	}

	// relatórios do chat ficaram defasados
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, chatID); err != nil {
			s.log.Warn("cache invalidate failed", zap.Error(err))
		}
	}

	s.reply(ctx, chatID, fmt.Sprintf("recorded %d bet(s), total staked %d", stored, total))
}

// summary monta (ou busca do cache) o relatório pedido e envia ao chat.
func (s *Server) summary(ctx context.Context, chatID, mode string, perUser, morningOnly bool) {
	if s.OnSummary != nil {
		s.OnSummary(mode)
	}

	if s.cache != nil {
		if report, ok, err := s.cache.Get(ctx, chatID, mode); err == nil && ok {
			s.reply(ctx, chatID, report)
			return
		}
	}

	records, err := s.repo.ListByChat(ctx, chatID)
	if err != nil {
		s.log.Error("list bets failed", zap.String("chat", chatID), zap.Error(err))
		if s.OnError != nil {
			s.OnError("list")
		}
		return
	}

	if morningOnly {
		kept := records[:0]
		for _, r := range records {
			if bet.BeforeNoonLocal(r.CreatedAt) {
				kept = append(kept, r)
			}
		}
		records = kept
	}

	report, ok := bet.Summarize(records, perUser)
	if !ok {
		s.reply(ctx, chatID, noDataMessage)
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, chatID, mode, report, summaryCacheTTL); err != nil {
			s.log.Warn("cache set failed", zap.Error(err))
		}
	}
	s.reply(ctx, chatID, report)
}

func (s *Server) reply(ctx context.Context, chatID, text string) {
	if err := s.tg.SendText(ctx, chatID, text); err != nil {
		s.log.Warn("send reply failed", zap.String("chat", chatID), zap.Error(err))
		if s.OnError != nil {
			s.OnError("send")
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
