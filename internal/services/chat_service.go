// internal/services/chat_service.go
package services

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/mentorme/MentorMe/internal/errors"
	"github.com/mentorme/MentorMe/internal/models"
	"github.com/mentorme/MentorMe/internal/replyengine"
	"github.com/mentorme/MentorMe/internal/storage"
	"github.com/mentorme/MentorMe/internal/utils"
)

const chatDir = "chat"

// ChatService 管理会话线程：首次打开时注入种子消息，发帖后延迟生成模拟回复
// 回复总是落盘；是否推送到前端由各线程的订阅者决定
type ChatService struct {
	store    *storage.FileStorage
	engine   *replyengine.Engine
	profiles *ProfileService
	mentors  *MentorService
	requests *RequestService

	replyDelay time.Duration

	// 线程级别锁，保护读-改-写的追加操作
	threadLocks sync.Map

	// 回复落盘后的推送回调，由WebSocket层注入
	broadcastMu sync.RWMutex
	broadcast   func(threadID string, message models.Message)
}

// NewChatService 创建聊天服务
func NewChatService(store *storage.FileStorage, engine *replyengine.Engine,
	profiles *ProfileService, mentors *MentorService, requests *RequestService,
	replyDelay time.Duration) *ChatService {
	return &ChatService{
		store:      store,
		engine:     engine,
		profiles:   profiles,
		mentors:    mentors,
		requests:   requests,
		replyDelay: replyDelay,
	}
}

// SetBroadcast 注入回复推送回调
func (s *ChatService) SetBroadcast(broadcast func(threadID string, message models.Message)) {
	s.broadcastMu.Lock()
	defer s.broadcastMu.Unlock()
	s.broadcast = broadcast
}

func (s *ChatService) lockThread(threadID string) *sync.Mutex {
	value, _ := s.threadLocks.LoadOrStore(threadID, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// Threads 返回当前用户可见的线程列表：群聊在前，一对一在后
func (s *ChatService) Threads() []models.ThreadInfo {
	user := s.profiles.CurrentUser()

	if user.Role == models.UserTypeMentor {
		return []models.ThreadInfo{
			{ID: models.ThreadMentorStrategy, Type: "circle", Title: "Mentor Strategy",
				Subtitle: "Check-ins, accountability, mentoring flow", Icon: "🧭"},
			{ID: models.ThreadMentorResources, Type: "circle", Title: "Mentor Resources",
				Subtitle: "CV reviews, templates, and guidance packs", Icon: "📚"},
			{ID: models.ThreadMentorCases, Type: "circle", Title: "Mentor Case Room",
				Subtitle: "Case prep and interview coaching tactics", Icon: "🧠"},
			s.directThread(user),
		}
	}

	return []models.ThreadInfo{
		{ID: models.ThreadMenteeCheckins, Type: "circle", Title: "Mentee Check-ins",
			Subtitle: "Discussing mentor response and support", Icon: "🤝"},
		{ID: models.ThreadMenteeOpportunities, Type: "circle", Title: "Mentee Opportunities",
			Subtitle: "Internships, jobs, referrals", Icon: "💼"},
		{ID: models.ThreadMenteeInterviews, Type: "circle", Title: "Mock It Till We Make It",
			Subtitle: "Interview practice, confidence, and feedback", Icon: "🎤"},
		s.directThread(user),
	}
}

// directThread 解析当前用户的一对一线程
func (s *ChatService) directThread(user models.CurrentUser) models.ThreadInfo {
	if user.Role == models.UserTypeMentor {
		profile := s.profiles.GetMentorProfile()
		mentorName := fallbackName(profile.Name, profile.FirstName, profile.LastName, user.Name)

		menteeName := "Your Mentee"
		if accepted, ok := s.requests.AcceptedForMentor(profile.ID, mentorName); ok && accepted.Mentee.Name != "" {
			menteeName = accepted.Mentee.Name
		}

		return models.ThreadInfo{
			ID:       models.DirectThreadID(menteeName),
			Type:     "direct",
			Title:    "My Mentee",
			Subtitle: menteeName,
			Icon:     "💬",
		}
	}

	acceptedName := ""
	if accepted, ok := s.requests.AcceptedForMentee(user); ok {
		acceptedName = accepted.MentorName
	}
	mentorName := s.mentors.ResolveMentorNameForMentee(acceptedName, "", user.Name)

	return models.ThreadInfo{
		ID:       models.DirectThreadID(mentorName),
		Type:     "direct",
		Title:    "Current Mentor",
		Subtitle: mentorName,
		Icon:     "💬",
	}
}

// Messages 返回线程消息，首次打开时写入种子消息
func (s *ChatService) Messages(threadID string) ([]models.Message, error) {
	if threadID == "" {
		return nil, errors.NewInvalid(errors.ResourceThread, "线程ID不能为空")
	}

	lock := s.lockThread(threadID)
	lock.Lock()
	defer lock.Unlock()

	user := s.profiles.CurrentUser()
	partnerName := s.directThread(user).Subtitle

	messages := s.loadMessages(threadID)
	if len(messages) == 0 && !s.store.Exists(chatDir, threadFile(threadID)) {
		seeded := s.initialMessages(threadID, user, partnerName)
		if err := s.saveMessages(threadID, seeded); err != nil {
			return nil, err
		}
		return seeded, nil
	}

	normalized, changed := normalizeMessages(messages, threadID, user, partnerName)
	if changed {
		if err := s.saveMessages(threadID, normalized); err != nil {
			return nil, err
		}
	}
	return normalized, nil
}

// PostMessage 追加用户消息并安排模拟回复
// 回复在 replyDelay 之后总是落盘，再通过回调推送给该线程的订阅者
func (s *ChatService) PostMessage(threadID, text string) (models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Message{}, errors.NewInvalid(errors.ResourceMessage, "消息内容不能为空")
	}
	if threadID == "" {
		return models.Message{}, errors.NewInvalid(errors.ResourceThread, "线程ID不能为空")
	}

	user := s.profiles.CurrentUser()
	partnerName := s.directThread(user).Subtitle

	lock := s.lockThread(threadID)
	lock.Lock()
	messages := s.loadMessages(threadID)
	userMessage := models.NewMessage(user.Name, trimmed)
	messages = append(messages, userMessage)
	if err := s.saveMessages(threadID, messages); err != nil {
		lock.Unlock()
		return models.Message{}, err
	}
	lock.Unlock()

	// 回复草稿基于发送时的线程快照，与前端实现一致
	reply := s.engine.BuildSmartReply(replyengine.Input{
		Message:        trimmed,
		Persona:        personaFor(user.Role, threadID),
		ThreadID:       threadID,
		RecentMessages: messages,
		MyName:         user.Name,
		FallbackName:   partnerName,
	})

	persist := func() { s.persistReply(threadID, reply) }
	if s.replyDelay > 0 {
		time.AfterFunc(s.replyDelay, persist)
	} else {
		persist()
	}

	return userMessage, nil
}

// persistReply 将回复追加到线程并推送
func (s *ChatService) persistReply(threadID string, reply replyengine.Reply) {
	lock := s.lockThread(threadID)
	lock.Lock()
	messages := s.loadMessages(threadID)
	message := models.NewMessage(reply.Name, reply.Text)
	messages = append(messages, message)
	err := s.saveMessages(threadID, messages)
	lock.Unlock()

	if err != nil {
		utils.GetLogger().Errorf("落盘模拟回复失败 thread=%s: %v", threadID, err)
		return
	}

	s.broadcastMu.RLock()
	broadcast := s.broadcast
	s.broadcastMu.RUnlock()
	if broadcast != nil {
		broadcast(threadID, message)
	}
}

// personaFor 由用户角色和线程类型决定回复的说话人设
func personaFor(role models.UserType, threadID string) replyengine.Persona {
	if models.IsDirectThread(threadID) {
		if role == models.UserTypeMentor {
			return replyengine.PersonaMenteeDirect
		}
		return replyengine.PersonaMentorDirect
	}
	if role == models.UserTypeMentor {
		return replyengine.PersonaMentorPeer
	}
	return replyengine.PersonaMenteePeer
}

// initialMessages 线程的种子消息
// 导师群聊有固定的两条开场白，学员群聊从空开始，一对一线程由对方先问好
func (s *ChatService) initialMessages(threadID string, user models.CurrentUser, partnerName string) []models.Message {
	switch threadID {
	case models.ThreadMenteeCheckins, models.ThreadMenteeOpportunities, models.ThreadMenteeInterviews:
		return []models.Message{}
	case models.ThreadMentorStrategy:
		return []models.Message{
			models.NewMessage("Mentor 1", "How often are you all checking in with mentees?"),
			models.NewMessage("Mentor 2", "Bi-weekly check-ins worked best for consistency."),
		}
	case models.ThreadMentorResources:
		return []models.Message{
			models.NewMessage("Mentor 3", "Uploaded a first-session template for new mentees."),
			models.NewMessage("Mentor 4", "Great, also adding a CV feedback checklist."),
		}
	case models.ThreadMentorCases:
		return []models.Message{
			models.NewMessage("Mentor 5", "Any good PM case resources for mentees this cycle?"),
			models.NewMessage("Mentor 6", "I’ll share my case prep deck shortly."),
		}
	}

	greeting := "Hi mentor, thank you for accepting my request!"
	if user.Role == models.UserTypeMentee {
		greeting = directGreeting(user)
	}
	return []models.Message{models.NewMessage(partnerName, greeting)}
}

func directGreeting(user models.CurrentUser) string {
	return "Hi " + user.FirstNameOr("there") + ", what should we focus on this week?"
}

var (
	oldGreetingPattern = regexp.MustCompile(`(?i)^Hi\s.+,\swhat should we focus on this week\?$`)
	// 修复历史损坏的回复：截断在话题插入语中间的句尾
	brokenTopicTail  = regexp.MustCompile(`(?i)\sIf you want, we can focus on\s[^.?!,]+,?\s*$`)
	brokenLegacyTail = regexp.MustCompile(`(?i)\sOn\s[^.?!,]+,\s*$`)
)

// normalizeMessages 打开线程时的一次性数据修正
func normalizeMessages(messages []models.Message, threadID string, user models.CurrentUser, partnerName string) ([]models.Message, bool) {
	if len(messages) == 0 {
		return messages, false
	}

	changed := false

	// 一对一线程：旧版问候语重写为面向当前用户的版本
	if models.IsDirectThread(threadID) && user.Role == models.UserTypeMentee {
		first := messages[0]
		if first.Name == partnerName && oldGreetingPattern.MatchString(first.Text) {
			if expected := directGreeting(user); first.Text != expected {
				messages[0].Text = expected
				changed = true
			}
		}
	}

	// 学员群聊：只保留当前用户自己的消息
	if models.IsMenteeGroup(threadID) && user.Role == models.UserTypeMentee {
		mine := make([]models.Message, 0, len(messages))
		for _, message := range messages {
			if message.Name == user.Name {
				mine = append(mine, message)
			}
		}
		if len(mine) != len(messages) {
			messages = mine
			changed = true
		}
	}

	// 导师视角：清理被截断的历史回复
	if user.Role == models.UserTypeMentor {
		for i := range messages {
			cleaned := brokenTopicTail.ReplaceAllString(messages[i].Text, "")
			cleaned = brokenLegacyTail.ReplaceAllString(cleaned, "")
			cleaned = strings.TrimSpace(cleaned)
			if cleaned != messages[i].Text {
				messages[i].Text = cleaned
				changed = true
			}
		}
	}

	return messages, changed
}

func (s *ChatService) loadMessages(threadID string) []models.Message {
	var messages []models.Message
	if s.store.Exists(chatDir, threadFile(threadID)) {
		s.store.LoadJSON(chatDir, threadFile(threadID), &messages)
	}
	return messages
}

func (s *ChatService) saveMessages(threadID string, messages []models.Message) error {
	if err := s.store.SaveJSON(chatDir, threadFile(threadID), messages); err != nil {
		return errors.NewProcessingError("保存线程消息失败", err)
	}
	return nil
}

func threadFile(threadID string) string {
	return threadID + ".json"
}
