package mailer

import (
	"fmt"
	"strings"

	"ezysalad/internal/model"
)

// OrderConfirmationSubject builds the subject line for the customer mail.
func OrderConfirmationSubject(orderNumber string) string {
	return fmt.Sprintf("[ezySalad] 결제 완료 - %s", orderNumber)
}

// NewOrderAlertSubject builds the subject line for the operator mail.
func NewOrderAlertSubject(orderNumber, customerName string) string {
	return fmt.Sprintf("[새 주문] %s - %s님", orderNumber, customerName)
}

// ContactSubject builds the subject line for contact-form mail.
func ContactSubject(name string) string {
	return fmt.Sprintf("[ezySalad 문의] %s님의 문의사항", name)
}

// BuildOrderConfirmationBody builds the HTML body sent after a successful
// payment, to both the customer and the operator.
func BuildOrderConfirmationBody(order *model.Order, items []model.OrderItem, paymentID string) string {
	var itemsHTML strings.Builder
	for _, item := range items {
		itemsHTML.WriteString(fmt.Sprintf(
			`<tr>
				<td style="padding: 10px; border-bottom: 1px solid #eee;">%s</td>
				<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: center;">%d개</td>
				<td style="padding: 10px; border-bottom: 1px solid #eee; text-align: right;">%s원</td>
			</tr>`,
			item.MenuName,
			item.Quantity,
			formatNumber(item.Price*int64(item.Quantity)),
		))
	}

	paidAt := ""
	if order.PaidAt != nil {
		paidAt = order.PaidAt.Format("2006-01-02 15:04:05")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>ezySalad 주문 확인</title>
</head>
<body style="font-family: 'Apple SD Gothic Neo', 'Noto Sans KR', sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="text-align: center; margin-bottom: 30px;">
		<h1 style="color: #4CAF50; margin-bottom: 10px;">🥗 ezySalad</h1>
		<h2 style="color: #333;">결제가 완료되었습니다!</h2>
	</div>

	<div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
		<h3 style="color: #333; margin-top: 0;">주문 정보</h3>
		<p><strong>주문번호:</strong> %s</p>
		<p><strong>결제ID:</strong> %s</p>
		<p><strong>결제일시:</strong> %s</p>
		<p><strong>주문자:</strong> %s</p>
		<p><strong>연락처:</strong> %s</p>
	</div>

	<div style="background-color: #fff; border: 1px solid #ddd; border-radius: 8px; margin-bottom: 20px;">
		<h3 style="color: #333; padding: 15px 20px; margin: 0; border-bottom: 1px solid #eee;">주문 상품</h3>
		<table style="width: 100%%; border-collapse: collapse;">
			<tbody>
				%s
			</tbody>
		</table>
		<div style="padding: 15px 20px; border-top: 2px solid #4CAF50; background-color: #f8f9fa;">
			<p style="margin: 5px 0;">상품 금액: %s원</p>
			<p style="margin: 5px 0;">배송비: %s원</p>
			<p style="margin: 5px 0; font-weight: bold; font-size: 18px; color: #4CAF50;">총 결제 금액: %s원</p>
		</div>
	</div>

	<div style="background-color: #fff; border: 1px solid #ddd; border-radius: 8px; margin-bottom: 20px;">
		<h3 style="color: #333; padding: 15px 20px; margin: 0; border-bottom: 1px solid #eee;">배송 정보</h3>
		<div style="padding: 20px;">
			<p><strong>배송 주소:</strong><br/>
				(%s) %s<br/>
				%s
			</p>
			<p><strong>배송 일시:</strong> %s %s</p>
		</div>
	</div>

	<div style="background-color: #e8f5e8; padding: 20px; border-radius: 8px; text-align: center;">
		<p style="margin: 0; color: #2e7d32;">
			<strong>결제가 완료되었습니다! 🙏</strong><br/>
			신선하고 건강한 음식으로 준비해서 배송해드리겠습니다.
		</p>
	</div>
</body>
</html>`,
		order.OrderNumber,
		paymentID,
		paidAt,
		order.CustomerName,
		order.CustomerPhone,
		itemsHTML.String(),
		formatNumber(order.TotalAmount-order.DeliveryFee),
		formatNumber(order.DeliveryFee),
		formatNumber(order.TotalAmount),
		order.DeliveryZipCode,
		order.DeliveryAddress,
		order.DeliveryDetailAddress,
		order.DeliveryDate,
		order.DeliveryTime,
	)
}

// BuildContactBody builds the HTML body for a contact-form message relayed to
// the operator mailbox.
func BuildContactBody(name, email, phone, message string) string {
	phoneRow := ""
	if phone != "" {
		phoneRow = fmt.Sprintf(`<p style="margin: 5px 0; color: #4b5563;"><strong>연락처:</strong> %s</p>`, phone)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<div style="background: linear-gradient(135deg, #4AE54A 0%%, #22C55E 100%%); padding: 30px; border-radius: 12px 12px 0 0; text-align: center;">
		<h1 style="color: white; margin: 0; font-size: 24px;">새로운 문의가 접수되었습니다</h1>
	</div>

	<div style="background: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 12px 12px;">
		<div style="margin-bottom: 25px;">
			<h3 style="color: #374151; margin-bottom: 10px; font-size: 16px;">고객 정보</h3>
			<div style="background: #f9fafb; padding: 15px; border-radius: 8px;">
				<p style="margin: 5px 0; color: #4b5563;"><strong>이름:</strong> %s</p>
				<p style="margin: 5px 0; color: #4b5563;"><strong>이메일:</strong> %s</p>
				%s
			</div>
		</div>

		<div style="margin-bottom: 25px;">
			<h3 style="color: #374151; margin-bottom: 10px; font-size: 16px;">문의 내용</h3>
			<div style="background: #f9fafb; padding: 15px; border-radius: 8px;">
				<p style="margin: 0; color: #4b5563; line-height: 1.6; white-space: pre-wrap;">%s</p>
			</div>
		</div>
	</div>
</body>
</html>`, name, email, phoneRow, message)
}

// formatNumber renders 1234567 as "1,234,567".
func formatNumber(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
