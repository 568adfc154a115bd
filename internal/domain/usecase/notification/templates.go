package notification

import "fmt"

// Email copy is Arabic-first, mirroring the product's tone. Bodies are
// self-contained HTML with dir="rtl".

const welcomeSubject = "أهلاً بيك في Flous Cash - مستقبل المال بين إيديك! 🎉"

func welcomeBody(name string) string {
	return fmt.Sprintf(`
<div dir="rtl" style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 40px 20px;">
  <div style="background: #ffffff; border-radius: 20px; padding: 30px; box-shadow: 0 8px 32px rgba(0, 0, 0, 0.1);">
    <h1 style="color: #1976D2; text-align: center;">أهلاً بيك في Flous Cash!</h1>
    <div style="color: #333; line-height: 1.6; font-size: 16px;">
      <p>عزيزي %s,</p>
      <p>مرحباً بيك في عائلة Flous Cash! احنا مبسوطين إنك انضممت لأكبر منصة مالية في مصر.</p>
      <div style="background: rgba(33, 150, 243, 0.1); border-radius: 15px; padding: 20px; margin: 20px 0;">
        <h3 style="color: #1976D2; margin: 0 0 15px 0;">إيه اللي تقدر تعمله دلوقتي:</h3>
        <ul style="margin: 0; padding-right: 20px;">
          <li style="margin-bottom: 8px;">قدّم على تمويل يوصل لـ 100,000 جنيه</li>
          <li style="margin-bottom: 8px;">اعمل خطة ادخار ذكية لمستقبلك</li>
          <li style="margin-bottom: 8px;">استثمر أموالك في خطط مضمونة</li>
          <li style="margin-bottom: 8px;">اكسب من كل صديق تدعوه للمنصة</li>
        </ul>
      </div>
      <p>لو محتاج أي مساعدة، فريق الدعم الفني بتاعنا جاهز 24/7 لمساعدتك.</p>
      <p style="text-align: center; color: #666; font-size: 14px; margin-top: 20px;">
        شكراً لثقتك في Flous Cash<br>فريق العمل
      </p>
    </div>
  </div>
</div>`, name)
}

const signedContractSubject = "عقد Flous Cash - تم التوقيع بنجاح"

func signedContractBody(firstName string) string {
	if firstName == "" {
		firstName = "العميل"
	}
	return fmt.Sprintf(`
<div dir="rtl" style="font-family: Arial, sans-serif;">
  <h2>مبروك! تم توقيع عقدك بنجاح</h2>
  <p>عزيزي %s,</p>
  <p>احنا بنهنيك على توقيع عقدك مع Flous Cash. العقد مرفق مع هذا الإيميل.</p>
  <p>شكراً لثقتك فينا!</p>
  <p>فريق Flous Cash</p>
</div>`, firstName)
}
