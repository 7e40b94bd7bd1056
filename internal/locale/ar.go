// Package locale holds the Arabic texts shown to people booking and to the
// staff reading the Telegram chat.
package locale

// Server-side validation reasons.
const (
	NameRequired    = "الاسم الكامل مطلوب"
	PhoneRequired   = "رقم الهاتف مطلوب"
	DateRequired    = "تاريخ الموعد مطلوب"
	TimeRequired    = "وقت الموعد مطلوب"
	ServiceRequired = "نوع الخدمة مطلوب"
)

// Form-side prompts, used by the submitting client before anything is sent.
const (
	PromptName    = "الرجاء إدخال الاسم الكامل"
	PromptPhone   = "الرجاء إدخال رقم الهاتف"
	PromptDate    = "الرجاء اختيار تاريخ الموعد"
	PromptTime    = "الرجاء اختيار وقت الموعد"
	PromptService = "الرجاء اختيار نوع الخدمة"
)

// Booking outcomes.
const (
	BookingConfirmed     = "تم حجز الموعد بنجاح! سنتواصل معك قريباً."
	ServerMisconfigured  = "خطأ في إعدادات الخادم. يرجى التواصل مع المسؤول."
	BookingFailed        = "حدث خطأ أثناء حجز الموعد. يرجى المحاولة مرة أخرى."
	InvalidRequest       = "بيانات الطلب غير صالحة."
	ConnectionProblem    = "حدث خطأ في الاتصال. يرجى التحقق من اتصال الإنترنت والمحاولة مرة أخرى."
	PastDateAdvisory     = "تنبيه: تاريخ الموعد في الماضي."
	HealthOK             = "Appointment booking server is running"
	DefaultBookingFailed = "حدث خطأ أثناء حجز الموعد"
)

// Telegram message labels.
const (
	MessageHeader = "🔔 *حجز موعد جديد*"
	LabelName     = "👤 *الاسم:*"
	LabelPhone    = "📱 *الهاتف:*"
	LabelDate     = "📅 *التاريخ:*"
	LabelTime     = "🕐 *الوقت:*"
	LabelService  = "🔧 *نوع الخدمة:*"
	LabelNotes    = "📝 *ملاحظات:*"
	MessageFooter = "✅ تم استلام الحجز بنجاح"
)
