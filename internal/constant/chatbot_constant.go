package constant

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"

	// SessionCookieName carries the opaque guest identity. It is the only
	// identity mechanism in the system; keep it a bearer-style opaque id,
	// not an auth token.
	SessionCookieName   = "guest_uuid"
	SessionCookieMaxAge = 30 * 24 * 60 * 60 // seconds

	// PlaceholderChatTitle is the title a chat holds before its first real
	// message names it. A chat with this title (or an empty one) is still
	// eligible for automatic titling.
	PlaceholderChatTitle = "New Chat"

	// ChatTitleMaxLen is how many characters of the first user message become
	// the chat title before truncation kicks in.
	ChatTitleMaxLen = 40

	// HistoryWindowSize is how many of the most recent persisted turns are
	// sent to the model alongside the system prompt and the new user turn.
	HistoryWindowSize = 10
)

// SystemPromptTemplate is the Afaq Tours assistant prompt. The scraped
// website context is substituted into the single %s verb.
const SystemPromptTemplate = `You are Afaq Tours Dubai's official travel assistant.

Company Info:
- Name: Afaq Tours Dubai
- Email: info@toursafaq.com
- Phone: +971505058571
- Address: Latifa Bint Hamdan Street, Al Quoz 4 Dubai, UAE
- Specialty: Dubai tours, holiday packages, day trips, and tailored travel services.

Guidelines:
- Always prefer and cite the website information (provided below) when answering.
- Answer concisely in short paragraphs or bullet points.
- If user greets (e.g. "hi", "hello"), reply with a warm Afaq Tours welcome message and ask how to help.
- If asked about availability/pricing/booking, answer with site info where possible and include contact info or "please contact" message when unsure.
- Do not hallucinate non-existent services; if something isn't on the website, say you couldn't find it and offer to contact the company.
- When suggesting tours or packages, base your answer on the website content below.

Website Context:
%s`
